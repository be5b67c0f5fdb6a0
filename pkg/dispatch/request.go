package dispatch

import (
	"net/url"
	"strings"

	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
)

// Request is one outgoing batch action.
type Request struct {
	Action    rules.Action
	Resources []string
}

// Query encodes the target resources: resource=<name> for a single
// resource, resources=<names joined by newlines> for several. Values are
// escaped the way encodeURIComponent escapes them.
func (r Request) Query() string {
	switch len(r.Resources) {
	case 0:
		return ""
	case 1:
		return "resource=" + escapeComponent(r.Resources[0])
	default:
		return "resources=" + escapeComponent(strings.Join(r.Resources, "\n"))
	}
}

// Endpoint is the action-specific path segment the request is posted to.
func (r Request) Endpoint() string {
	return r.Action.String()
}

// URL resolves the request against the resources page root.
func (r Request) URL(root string) string {
	return strings.TrimSuffix(root, "/") + "/" + r.Endpoint() + "?" + r.Query()
}

// componentUnescaper undoes the QueryEscape escapes that encodeURIComponent
// leaves literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
