package redact

import "github.com/charmbracelet/log"

// Logger scrubs messages and structured fields before handing them to the
// underlying logger.
type Logger struct {
	inner *log.Logger
}

// Wrap returns a redacting front for inner.
func Wrap(inner *log.Logger) *Logger {
	return &Logger{inner: inner}
}

// With returns a Logger whose scrubbed fields are attached to every entry.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{inner: l.inner.With(Fields(keyvals...)...)}
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.inner.Debug(String(msg), Fields(keyvals...)...)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.inner.Info(String(msg), Fields(keyvals...)...)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.inner.Warn(String(msg), Fields(keyvals...)...)
}

func (l *Logger) Error(msg string, keyvals ...any) {
	l.inner.Error(String(msg), Fields(keyvals...)...)
}
