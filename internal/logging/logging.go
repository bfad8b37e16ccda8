// Package logging provides a small leveled logger. A Logger is constructed
// by the caller and injected into each merge run, so concurrent runs within
// one process never share handler state.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level controls which messages a Logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a configuration string to a Level. Unknown values
// default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped, leveled messages to stdout/stderr.
type Logger struct {
	min Level
	out *log.Logger
	err *log.Logger
}

// New creates a Logger that drops messages below min.
func New(min Level) *Logger {
	return NewWithOutput(min, os.Stdout, os.Stderr)
}

// NewWithOutput creates a Logger writing to the given sinks; tests use this
// to capture output.
func NewWithOutput(min Level, out, errOut io.Writer) *Logger {
	return &Logger{
		min: min,
		out: log.New(out, "", 0),
		err: log.New(errOut, "", 0),
	}
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Debug(format string, args ...any) {
	if l.min <= LevelDebug {
		l.out.Printf(fmt.Sprintf("[%s] \033[36mDEBUG\033[0m %s", timestamp(), format), args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	if l.min <= LevelInfo {
		l.out.Printf(fmt.Sprintf("[%s] \033[32mINFO\033[0m  %s", timestamp(), format), args...)
	}
}

func (l *Logger) Warn(format string, args ...any) {
	if l.min <= LevelWarn {
		l.out.Printf(fmt.Sprintf("[%s] \033[33mWARN\033[0m  %s", timestamp(), format), args...)
	}
}

func (l *Logger) Error(format string, args ...any) {
	if l.min <= LevelError {
		l.err.Printf(fmt.Sprintf("[%s] \033[31mERROR\033[0m %s", timestamp(), format), args...)
	}
}
