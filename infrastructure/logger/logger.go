package logger

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger writes log entries for one subsystem at or above its configured
// level. Loggers are safe for concurrent use.
type Logger struct {
	lvl Level // atomic
	tag string
	b   *Backend
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(logLevel))
}

func (l *Logger) print(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.b.write(logLevel, l.formatEntry(logLevel, fmt.Sprint(args...)))
}

func (l *Logger) printf(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.b.write(logLevel, l.formatEntry(logLevel, fmt.Sprintf(format, args...)))
}

// formatEntry renders one log line:
// 2006-01-02 15:04:05.000 [INF] TAG: message
func (l *Logger) formatEntry(logLevel Level, message string) []byte {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	callsite := ""
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line, ok := callerFileLine(l.b.flag)
		if ok {
			callsite = fmt.Sprintf(" %s:%d", file, line)
		}
	}

	return []byte(fmt.Sprintf("%s [%s] %s:%s %s\n",
		timestamp, logLevel, l.tag, callsite, message))
}

// callerFileLine walks up past the logger frames to the logging callsite.
func callerFileLine(flag uint32) (string, int, bool) {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return "", 0, false
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line, true
}

// Trace formats a message using the default formats for its operands and
// writes it at LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

// Tracef formats a message according to a format specifier and writes it at
// LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debug writes a message at LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

// Debugf writes a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Info writes a message at LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

// Infof writes a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warn writes a message at LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

// Warnf writes a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Error writes a message at LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

// Errorf writes a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Critical writes a message at LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}

// Criticalf writes a formatted message at LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}
