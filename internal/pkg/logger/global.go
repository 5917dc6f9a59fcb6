package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Field is a typed structured-log field.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Err creates an error field
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

var global *AppLogger

// SetGlobal installs the process-wide logger used by the package-level
// helpers. Called once from main after config is loaded.
func SetGlobal(l *AppLogger) {
	global = l
}

func entry(fields []Field) *logrus.Entry {
	l := global
	if l == nil {
		l = &AppLogger{Logger: logrus.StandardLogger()}
	}
	logrusFields := logrus.Fields{}
	for _, f := range fields {
		logrusFields[f.Key] = f.Value
	}
	return l.WithFields(logrusFields)
}

// Debug logs at debug level with structured fields
func Debug(msg string, fields ...Field) {
	entry(fields).Debug(msg)
}

// Info logs at info level with structured fields
func Info(msg string, fields ...Field) {
	entry(fields).Info(msg)
}

// Warn logs at warn level with structured fields
func Warn(msg string, fields ...Field) {
	entry(fields).Warn(msg)
}

// Error logs at error level with structured fields
func Error(msg string, fields ...Field) {
	entry(fields).Error(msg)
}

// Fatal logs at fatal level with structured fields and exits
func Fatal(msg string, fields ...Field) {
	entry(fields).Fatal(msg)
}
