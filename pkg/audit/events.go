package audit

import (
	"fmt"
	"strconv"
	"strings"
)

func actor(user string) string {
	if user == "" {
		return "anonymous"
	}
	return user
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// ActionEvent represents a dispatched batch action
type ActionEvent struct {
	User         string
	Action       string
	Resources    []string
	Success      bool
	ErrorMessage string
}

func (e ActionEvent) MessageID() string {
	return "action"
}

func (e ActionEvent) Message() string {
	target := strings.Join(e.Resources, ", ")
	if e.Success {
		return fmt.Sprintf("%s requested %s on %s", actor(e.User), e.Action, target)
	}
	msg := fmt.Sprintf("%s failed to request %s on %s", actor(e.User), e.Action, target)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ActionEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e ActionEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ActionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": actor(e.User),
		},
		SDIDSubject: {
			"resources": strings.Join(e.Resources, ","),
			"count":     strconv.Itoa(len(e.Resources)),
		},
		SDIDAction: {
			"operation": e.Action,
			"result":    result(e.Success),
		},
	}
}

// PermissionsEvent represents a permission load of the action bar
type PermissionsEvent struct {
	User    string
	Granted []string
}

func (e PermissionsEvent) MessageID() string {
	return "permissions"
}

func (e PermissionsEvent) Message() string {
	if len(e.Granted) == 0 {
		return fmt.Sprintf("%s loaded no lockable-resources permissions", actor(e.User))
	}
	return fmt.Sprintf("%s loaded permissions %s", actor(e.User), strings.Join(e.Granted, ", "))
}

func (e PermissionsEvent) Severity() Severity {
	return SeverityInfo
}

func (e PermissionsEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PermissionsEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": actor(e.User),
		},
		SDIDAction: {
			"operation": "load",
			"granted":   strings.Join(e.Granted, ","),
		},
	}
}

// NoteEvent represents a note edit form request
type NoteEvent struct {
	User         string
	Resource     string
	Success      bool
	ErrorMessage string
}

func (e NoteEvent) MessageID() string {
	return "note"
}

func (e NoteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s opened the note of %s", actor(e.User), e.Resource)
	}
	msg := fmt.Sprintf("%s could not open the note of %s", actor(e.User), e.Resource)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e NoteEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e NoteEvent) Facility() int {
	return FacilityUser
}

func (e NoteEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": actor(e.User),
		},
		SDIDSubject: {
			"resource": e.Resource,
		},
		SDIDAction: {
			"operation": "edit-note",
			"result":    result(e.Success),
		},
	}
}
