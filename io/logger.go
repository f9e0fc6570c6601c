package dispio

import (
	"fmt"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the tag used as the message prefix.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled logging bound to an IOManager. Messages at
// LevelWarning and above go to the error stream, everything else to the
// output stream. The tag prefix is colorized when the terminal supports it.
type Logger struct {
	io         *IOManager
	minLevel   LogLevel
	withTime   bool
	timeFormat string
}

// NewLogger creates a logger bound to the given IOManager, filtering below
// LevelInfo by default.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:         io,
		minLevel:   LevelInfo,
		timeFormat: "15:04:05",
	}
}

// WithLevel sets the minimum level emitted and returns the logger for chaining.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTime enables a timestamp prefix and returns the logger for chaining.
func (l *Logger) WithTime() *Logger {
	l.withTime = true
	return l
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs a formatted message at warning level.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarning, format, args...) }

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}

	tag := "[" + level.String() + "]"
	switch level {
	case LevelDebug:
		tag = l.io.Faint(tag)
	case LevelWarning:
		tag = l.io.Yellow(tag)
	case LevelError:
		tag = l.io.Red(tag)
	case LevelInfo:
	}

	line := tag + " " + fmt.Sprintf(format, args...)
	if l.withTime {
		line = time.Now().Format(l.timeFormat) + " " + line
	}

	w := l.io.Out()
	if level >= LevelWarning {
		w = l.io.Err()
	}
	fmt.Fprintln(w, line)
}
