package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level is the minimum severity a logger writes
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the label printed in front of each entry
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger defines the interface for structured logging
type Logger interface {
	// Info logs an informational message
	Info(msg string, fields ...Field)

	// Warn logs a recoverable problem
	Warn(msg string, fields ...Field)

	// Error logs an error message
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message
	Debug(msg string, fields ...Field)

	// WithFields returns a logger with additional fields
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates a 64-bit integer field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates an unsigned 64-bit integer field
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Error creates an error field
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// defaultLogger implements the Logger interface using the standard log package
type defaultLogger struct {
	logger *log.Logger
	level  Level
	fields []Field
	now    func() time.Time
}

// NewLogger creates a logger that writes every level to stderr
func NewLogger() Logger {
	return NewLoggerWithLevel(os.Stderr, LevelDebug)
}

// NewLoggerWithOutput creates a new logger instance with custom output
func NewLoggerWithOutput(w io.Writer) Logger {
	return NewLoggerWithLevel(w, LevelDebug)
}

// NewLoggerWithLevel creates a logger that drops entries below level
func NewLoggerWithLevel(w io.Writer, level Level) Logger {
	return &defaultLogger{
		logger: log.New(w, "", 0),
		level:  level,
		fields: []Field{},
		now:    time.Now,
	}
}

// Info logs an informational message
func (l *defaultLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a recoverable problem
func (l *defaultLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message
func (l *defaultLogger) Error(msg string, err error, fields ...Field) {
	allFields := append([]Field{Error(err)}, fields...)
	l.log(LevelError, msg, allFields...)
}

// Debug logs a debug message
func (l *defaultLogger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// WithFields returns a logger with additional fields
func (l *defaultLogger) WithFields(fields ...Field) Logger {
	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &defaultLogger{
		logger: l.logger,
		level:  l.level,
		fields: newFields,
		now:    l.now,
	}
}

// log is the internal logging method
func (l *defaultLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	// Persistent fields first, copied so appends never alias l.fields
	allFields := make([]Field, 0, len(l.fields)+len(fields))
	allFields = append(allFields, l.fields...)
	allFields = append(allFields, fields...)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", l.now().Format(time.RFC3339), level, msg)

	if len(allFields) > 0 {
		b.WriteString(" {")
		for i, field := range allFields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", field.Key, field.Value)
		}
		b.WriteString("}")
	}

	l.logger.Println(b.String())
}
