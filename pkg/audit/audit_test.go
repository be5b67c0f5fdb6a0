package audit

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)
	logger.hostname = "jenkins-1"
	logger.pid = 42
	logger.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	logger.Log(ActionEvent{
		User:      "alice",
		Action:    "unlock",
		Resources: []string{"printer", "scanner"},
		Success:   true,
	})

	expected := `<85>1 2024-03-01T12:00:00.000Z jenkins-1 lockable-resources 42 action ` +
		`[action@32473 operation="unlock" result="success"]` +
		`[auth@32473 user="alice"]` +
		`[subject@32473 count="2" resources="printer,scanner"] ` +
		"alice requested unlock on printer, scanner\n"
	if buf.String() != expected {
		t.Errorf("Log() =\n%q\nwant\n%q", buf.String(), expected)
	}
}

func TestEscapeSDValue(t *testing.T) {
	got := escapeSDValue(`a "quoted" [value] \ here`)
	want := `"a \"quoted\" [value\] \\ here"`
	if got != want {
		t.Errorf("escapeSDValue() = %s, want %s", got, want)
	}
}

func TestActionEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   ActionEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful action",
			event: ActionEvent{
				User:      "alice",
				Action:    "reserve",
				Resources: []string{"printer"},
				Success:   true,
			},
			wantMsg: "alice requested reserve on printer",
			wantSev: SeverityNotice,
		},
		{
			name: "failed action",
			event: ActionEvent{
				Action:       "steal",
				Resources:    []string{"printer"},
				ErrorMessage: "steal returned 403",
			},
			wantMsg: "anonymous failed to request steal on printer: steal returned 403",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.event.Message() != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != "action" {
				t.Errorf("MessageID() = %v, want action", tt.event.MessageID())
			}
		})
	}
}

func TestPermissionsEvent(t *testing.T) {
	event := PermissionsEvent{User: "bob", Granted: []string{"EDIT", "RESERVE", "UNRESERVE"}}
	if !strings.Contains(event.Message(), "EDIT, RESERVE, UNRESERVE") {
		t.Errorf("Message() = %q", event.Message())
	}
	if event.StructuredData()[SDIDAction]["granted"] != "EDIT,RESERVE,UNRESERVE" {
		t.Errorf("unexpected structured data %v", event.StructuredData())
	}

	empty := PermissionsEvent{User: "bob"}
	if !strings.Contains(empty.Message(), "no lockable-resources permissions") {
		t.Errorf("Message() = %q", empty.Message())
	}
}

func TestNoteEvent(t *testing.T) {
	ok := NoteEvent{User: "alice", Resource: "printer", Success: true}
	if ok.Facility() != FacilityUser {
		t.Errorf("Facility() = %d, want %d", ok.Facility(), FacilityUser)
	}
	if ok.Message() != "alice opened the note of printer" {
		t.Errorf("Message() = %q", ok.Message())
	}

	failed := NoteEvent{User: "alice", Resource: "printer", ErrorMessage: "timeout"}
	if failed.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", failed.Severity(), SeverityWarning)
	}
	if !strings.HasSuffix(failed.Message(), ": timeout") {
		t.Errorf("Message() = %q", failed.Message())
	}
}

func TestLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	previous := DefaultLogger
	DefaultLogger = NewLogger()
	DefaultLogger.SetWriter(&buf)
	defer func() {
		DefaultLogger = previous
		SetEnabled(true)
	}()

	SetEnabled(false)
	Log(NoteEvent{Resource: "printer", Success: true})
	if buf.Len() != 0 {
		t.Errorf("expected no output while disabled, got %q", buf.String())
	}

	SetEnabled(true)
	Log(NoteEvent{Resource: "printer", Success: true})
	if !strings.Contains(buf.String(), "opened the note of printer") {
		t.Errorf("expected note event, got %q", buf.String())
	}
}
