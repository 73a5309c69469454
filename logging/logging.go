package logging

import (
	"io"
	"log"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "TRACE"
	}
}

// Logger is a leveled logger. Messages below the configured level are dropped.
type Logger struct {
	level int
	l     *log.Logger
}

// CreateLogger constructs a Logger which writes messages at or above the given
// level to w
func CreateLogger(level int, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, l: log.New(w, "", log.LstdFlags)}
}

func (lg *Logger) logf(level int, format string, v ...interface{}) {
	if lg == nil || level < lg.level {
		return
	}
	lg.l.Printf(LogLevelToString(level)+" "+format, v...)
}

// Tracef logs a message at TraceLevel
func (lg *Logger) Tracef(format string, v ...interface{}) {
	lg.logf(TraceLevel, format, v...)
}

// Debugf logs a message at DebugLevel
func (lg *Logger) Debugf(format string, v ...interface{}) {
	lg.logf(DebugLevel, format, v...)
}

// Infof logs a message at InfoLevel
func (lg *Logger) Infof(format string, v ...interface{}) {
	lg.logf(InfoLevel, format, v...)
}

// Warnf logs a message at WarnLevel
func (lg *Logger) Warnf(format string, v ...interface{}) {
	lg.logf(WarnLevel, format, v...)
}

// Errorf logs a message at ErrorLevel
func (lg *Logger) Errorf(format string, v ...interface{}) {
	lg.logf(ErrorLevel, format, v...)
}
