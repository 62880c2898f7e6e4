package syslog

import (
	"context"

	"go.uber.org/zap/zapcore"
)

// EventIDKey is the field key which the zap core takes the event ID from. The field must be an integer field.
const EventIDKey = "event_id"

// LevelFromZap maps a zap level to a Level. Levels below Debug become Trace, and DPanic, Panic and Fatal
// become Critical.
func LevelFromZap(lvl zapcore.Level) Level {
	switch {
	case lvl < zapcore.DebugLevel:
		return LevelTrace
	case lvl == zapcore.DebugLevel:
		return LevelDebug
	case lvl == zapcore.InfoLevel:
		return LevelInformation
	case lvl == zapcore.WarnLevel:
		return LevelWarning
	case lvl == zapcore.ErrorLevel:
		return LevelError
	default:
		return LevelCritical
	}
}

type core struct {
	logger *Logger
	fields []zapcore.Field
}

var _ zapcore.Core = &core{}

// NewCore returns a zap core which sends every entry through `l`. The logger name becomes the category, the
// fields become a `map[string]any` payload (see `FieldsProvider`), and the first error field becomes the event
// error. Send errors are returned from `Write`, and zap reports them on its error output.
func NewCore(l *Logger, fields ...zapcore.Field) zapcore.Core {
	return &core{logger: l, fields: fields}
}

// Enabled implements zapcore.LevelEnabler
func (c *core) Enabled(lvl zapcore.Level) bool {
	return c.logger.Enabled(LevelFromZap(lvl))
}

// With implements zapcore.Core
func (c *core) With(fields []zapcore.Field) zapcore.Core {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	return &core{logger: c.logger, fields: all}
}

// Check implements zapcore.Core
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ev := Event{
		Category: ent.LoggerName,
		Level:    LevelFromZap(ent.Level),
		Time:     ent.Time,
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, all := range [][]zapcore.Field{c.fields, fields} {
		for _, f := range all {
			if f.Key == EventIDKey && isIntField(f) {
				ev.ID = int(f.Integer)
				continue
			}
			if f.Type == zapcore.ErrorType && ev.Err == nil {
				if err, ok := f.Interface.(error); ok {
					ev.Err = err
				}
			}
			f.AddTo(enc)
		}
	}
	ev.Payload = enc.Fields
	return c.logger.Log(context.Background(), ev, Text(ent.Message))
}

// Sync implements zapcore.Core. Messages are sent synchronously, so there is nothing to flush.
func (*core) Sync() error {
	return nil
}

func isIntField(f zapcore.Field) bool {
	switch f.Type { //nolint: exhaustive
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return true
	default:
		return false
	}
}
