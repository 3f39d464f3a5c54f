package logger

import "strings"

// Level is the severity at which a subsystem logger admits entries.
// Entries below the configured level are dropped before they reach the
// backend's destinations.
type Level uint32

// Log levels in ascending severity. LevelOff produces no output at all.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelNames maps the configuration spelling of each level to its value.
// Spellings are matched case-insensitively.
var levelNames = map[string]Level{
	"trace":    LevelTrace,
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"error":    LevelError,
	"critical": LevelCritical,
	"off":      LevelOff,
}

// levelTags holds the three-letter tag each level carries in log lines.
var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT"}

// LevelFromString parses a configuration level spelling. When s is not a
// recognized spelling, LevelInfo and false are returned.
func LevelFromString(s string) (Level, bool) {
	level, ok := levelNames[strings.ToLower(s)]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

// String returns the tag the level carries in log lines, or "OFF" for a
// level that produces no output.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelTags[l]
}
