package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// defaultFlags specifies changes to the default logger behavior. It is set
// during package init and configured using the LOGFLAGS environment
// variable. New logger backends can override these default flags using
// WithFlags.
var defaultFlags = getDefaultFlags()

// Flags to modify Backend's behavior.
const (
	// LogFlagLongFile modifies the logger output to include full path and
	// line number of the logging callsite, e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile modifies the logger output to include filename and
	// line number of the logging callsite, e.g. main.go:123. Takes
	// precedence over LogFlagLongFile.
	LogFlagShortFile
)

// Read logger flags from the LOGFLAGS environment variable. Multiple flags
// can be set at once, separated by commas.
func getDefaultFlags() (flags uint32) {
	for _, f := range strings.Split(os.Getenv("LOGFLAGS"), ",") {
		switch f {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return
}

// logWriter is one destination a Backend writes to, filtered by its own
// level.
type logWriter interface {
	io.WriteCloser
	logLevel() Level
}

type writerDestination struct {
	io.Writer
	level Level
}

func (d *writerDestination) logLevel() Level { return d.level }

func (d *writerDestination) Close() error { return nil }

type rotatingFileDestination struct {
	rotator *rotator.Rotator
	level   Level
}

func (d *rotatingFileDestination) Write(p []byte) (int, error) {
	return d.rotator.Write(p)
}

func (d *rotatingFileDestination) logLevel() Level { return d.level }

func (d *rotatingFileDestination) Close() error { return d.rotator.Close() }

// Backend is a logging backend. Subsystems created from the backend write
// to the backend's destinations. The backend serializes writes, so lines
// from different subsystems never interleave.
type Backend struct {
	flag    uint32
	mutex   sync.Mutex
	writers []logWriter
}

// NewBackend creates a new logger backend.
func NewBackend(opts ...BackendOption) *Backend {
	b := &Backend{flag: defaultFlags}
	for _, o := range opts {
		o(b)
	}
	return b
}

// BackendOption is a function used to modify the behavior of a Backend.
type BackendOption func(b *Backend)

// WithFlags configures a Backend to use the specified flags rather than
// using the package's defaults as determined through the LOGFLAGS
// environment variable.
func WithFlags(flags uint32) BackendOption {
	return func(b *Backend) {
		b.flag = flags
	}
}

// AddLogWriter adds a destination that writes log entries at or above the
// given level to the given writer.
func (b *Backend) AddLogWriter(writer io.Writer, logLevel Level) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writers = append(b.writers, &writerDestination{Writer: writer, level: logLevel})
	return nil
}

// AddLogFile adds a rotated-file destination that writes log entries at or
// above the given level to logFile. The containing directory is created if
// needed.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writers = append(b.writers, &rotatingFileDestination{rotator: r, level: logLevel})
	return nil
}

// write sends one formatted log line to every destination whose level
// admits it.
func (b *Backend) write(logLevel Level, line []byte) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, writer := range b.writers {
		if logLevel >= writer.logLevel() {
			_, _ = writer.Write(line)
		}
	}
}

// Close finalizes all destinations of this backend.
func (b *Backend) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, writer := range b.writers {
		_ = writer.Close()
	}
	b.writers = nil
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. A tag describes the subsystem and is included in all log
// messages. The logger is off until a level is set.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{lvl: LevelOff, tag: subsystemTag, b: b}
}
