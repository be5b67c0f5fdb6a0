package note

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Script is an initialisation script embedded in a note form.
type Script struct {
	Src  string
	Body string
}

// Fragment is a parsed note form.
type Fragment struct {
	Markup  string
	Scripts []Script
	// TextInput identifies the first text-input control, by id, then name,
	// then tag. Empty when the form has none.
	TextInput string
}

// ParseFragment parses markup as the children of a div and collects its
// scripts and first text-input control.
func ParseFragment(markup string) (*Fragment, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse note form: %w", err)
	}

	f := &Fragment{Markup: markup}
	for _, n := range nodes {
		f.walk(n)
	}
	return f, nil
}

func (f *Fragment) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script:
			f.Scripts = append(f.Scripts, Script{Src: attr(n, "src"), Body: text(n)})
			return
		case atom.Textarea:
			f.setTextInput(n)
		case atom.Input:
			if t := strings.ToLower(attr(n, "type")); t == "" || t == "text" {
				f.setTextInput(n)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
}

func (f *Fragment) setTextInput(n *html.Node) {
	if f.TextInput != "" {
		return
	}
	for _, key := range []string{"id", "name"} {
		if v := attr(n, key); v != "" {
			f.TextInput = v
			return
		}
	}
	f.TextInput = n.Data
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
