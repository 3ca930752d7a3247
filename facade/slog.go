package facade

import (
	"context"
	"log/slog"
	"strings"
)

// slogHandler is a slog.Handler that routes records into the facade so
// code written against log/slog reaches the registered logger.
type slogHandler struct {
	attrs  string
	prefix string
}

// NewSlogHandler returns a slog.Handler backed by the facade. Attributes are
// appended to the message as " key=value" pairs; groups become dotted key
// prefixes.
//
//	slog.SetDefault(slog.New(facade.NewSlogHandler()))
func NewSlogHandler() slog.Handler {
	return &slogHandler{}
}

// Enabled gates on the facade's fast path and the active logger.
func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return Enabled(FromSlogLevel(level), "slog")
}

// Handle renders the message and attributes and logs them as one record.
func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	Log(FromSlogLevel(r.Level), "slog", "%s", b.String())
	return nil
}

// WithAttrs returns a copy of the handler with additional base attributes.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	nh := *h
	nh.attrs = b.String()
	return &nh
}

// WithGroup returns a copy of the handler that qualifies later keys with name.
func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, groupPrefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// FromSlogLevel maps a slog level onto the facade's five levels.
func FromSlogLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return LevelTrace
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// ToSlogLevel maps a facade level onto slog's scale. Trace sits four below
// slog.LevelDebug.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}
