// Package log provides a small leveled logger used for diagnostics on stderr.
package log

import (
	"io"
	stdlog "log"
	"strings"
)

// Level is a logging threshold.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

// ParseLevel maps a level name to a Level. Unknown names fall back to Warn.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn", "warning", "":
		return Warn
	case "err", "error":
		return Error
	default:
		return Warn
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	default:
		return "error"
	}
}

// Logger writes messages at or above its level.
type Logger struct {
	level Level
	out   *stdlog.Logger
}

// New creates a logger writing to w.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: stdlog.New(w, "", 0)}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, Error+1)
}

// Level returns the logger's threshold.
func (l *Logger) Level() Level { return l.level }

func (l *Logger) Debugf(format string, v ...any) { l.logf(Debug, "[DEBUG] ", format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.logf(Info, "[INFO] ", format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.logf(Warn, "[WARN] ", format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.logf(Error, "[ERROR] ", format, v...) }

func (l *Logger) logf(level Level, prefix, format string, v ...any) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf(prefix+format, v...)
}
