package diag

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
)

// Configure initializes the commonlog backend. verbosity follows
// commonlog's convention: 0 is quiet, higher values are more verbose.
// Call this once, early in main.
func Configure(verbosity int) {
	commonlog.Configure(verbosity, nil)
}

// Logger is a named structured-logging handle for one subsystem
// ("scheduler", "worker", "octree", "cli"), wrapping a commonlog.Logger.
type Logger struct {
	name string
	log  commonlog.Logger
}

// New returns a Logger for the given subsystem name.
func New(name string) *Logger {
	return &Logger{name: name, log: commonlog.GetLogger(name)}
}

// Field is one key/value pair attached to a log record.
type Field struct {
	Key   string
	Value any
}

// F constructs a Field, for call sites like:
//
//	log.Info("cell subdivided", diag.F("depth", depth), diag.F("thread", id))
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func (l *Logger) format(message string, fields []Field) string {
	if len(fields) == 0 {
		return message
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return message + " " + strings.Join(parts, " ")
}

// Debug logs at debug verbosity.
func (l *Logger) Debug(message string, fields ...Field) {
	l.log.Debug(l.format(message, fields))
}

// Info logs at informational verbosity.
func (l *Logger) Info(message string, fields ...Field) {
	l.log.Info(l.format(message, fields))
}

// Warning logs a recoverable anomaly.
func (l *Logger) Warning(message string, fields ...Field) {
	l.log.Warning(l.format(message, fields))
}

// Error logs a failure, attaching err as a field when non-nil.
func (l *Logger) Error(message string, err error, fields ...Field) {
	if err != nil {
		fields = append(fields, F("error", err))
	}
	l.log.Error(l.format(message, fields))
}
