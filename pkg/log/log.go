// Package log configures the process-wide slog logger.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type ctxKey string

const slogFields ctxKey = "slog_fields"

type contextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	v, _ := parent.Value(slogFields).([]slog.Attr)
	attrs := make([]slog.Attr, 0, len(v)+1)
	attrs = append(attrs, v...)
	attrs = append(attrs, attr)
	return context.WithValue(parent, slogFields, attrs)
}

// New returns a JSON logger writing to w that picks up AppendCtx attributes.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: os.Getenv("LOCKABLE_LOG_ADD_SOURCE") == "true",
	}
	return slog.New(contextHandler{slog.NewJSONHandler(w, opts)})
}

// Init installs a JSON logger on stderr as the slog default.
func Init(level slog.Leveler) {
	slog.SetDefault(New(os.Stderr, level))
	slog.Debug("log config", "level", level.Level().String())
}
