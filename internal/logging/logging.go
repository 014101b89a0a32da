// Package logging provides the leveled logger used across the converter.
//
// Messages are printed as "[LEVEL] message" lines. The converter writes them
// to stderr so stdout carries only the rendered color table.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger is the logging interface consumed by the converter packages.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// writerLogger prints messages at or above its level to a writer.
type writerLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// New returns a Logger writing to out and dropping messages below level.
func New(out io.Writer, level Level) Logger {
	return &writerLogger{out: out, level: level}
}

func (l *writerLogger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "["+level.String()+"] "+msg+"\n", args...)
}

func (l *writerLogger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }
func (l *writerLogger) Info(msg string, args ...interface{})  { l.log(LevelInfo, msg, args...) }
func (l *writerLogger) Warn(msg string, args ...interface{})  { l.log(LevelWarn, msg, args...) }
func (l *writerLogger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
