// Package zapbridge routes go.uber.org/zap loggers into the facade, so
// libraries that log with zap end up on the simplog console.
//
//	logger := zap.New(zapbridge.NewCore())
//	logger.Info("listening", zap.Int("port", 8080)) // INFO	- listening port=8080
package zapbridge

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/xdg/simplog/facade"
)

const target = "zap"

// core implements zapcore.Core on top of the facade.
type core struct {
	fields string // pre-rendered " key=value" pairs from With
}

// NewCore returns a zapcore.Core that forwards entries to the facade's
// active logger. Level checks are delegated to the facade.
func NewCore() zapcore.Core {
	return &core{}
}

// Enabled reports whether the facade would emit a record at lvl.
func (c *core) Enabled(lvl zapcore.Level) bool {
	return facade.Enabled(FromZapLevel(lvl), target)
}

// With returns a core that appends fields to every entry.
func (c *core) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	return &core{fields: c.fields + renderFields(fields)}
}

// Check adds the core to ce when the entry's level is enabled.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write logs the entry as one facade record. The logger name, if any,
// becomes a "name: " message prefix.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var b strings.Builder
	if ent.LoggerName != "" {
		b.WriteString(ent.LoggerName)
		b.WriteString(": ")
	}
	b.WriteString(ent.Message)
	b.WriteString(c.fields)
	b.WriteString(renderFields(fields))
	facade.Log(FromZapLevel(ent.Level), target, "%s", b.String())
	return nil
}

// Sync flushes the facade's active logger.
func (c *core) Sync() error {
	facade.Flush()
	return nil
}

// FromZapLevel maps zap levels onto the facade. DPanic, Panic and Fatal
// all log as Error; zap itself still panics or exits afterwards.
func FromZapLevel(lvl zapcore.Level) facade.Level {
	switch {
	case lvl < zapcore.InfoLevel:
		return facade.LevelDebug
	case lvl == zapcore.InfoLevel:
		return facade.LevelInfo
	case lvl == zapcore.WarnLevel:
		return facade.LevelWarn
	default:
		return facade.LevelError
	}
}

// renderFields encodes fields as " key=value" pairs in key order.
func renderFields(fields []zapcore.Field) string {
	if len(fields) == 0 {
		return ""
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}
	return b.String()
}
