package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// backendLog is the logging backend used to create all subsystem loggers.
var backendLog = NewBackend()

// SubsystemTags is an enum of all subsystem tags.
var SubsystemTags = struct {
	BURN,
	CNFG string
}{
	BURN: "BURN",
	CNFG: "CNFG",
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]*Logger{
	SubsystemTags.BURN: backendLog.Logger(SubsystemTags.BURN),
	SubsystemTags.CNFG: backendLog.Logger(SubsystemTags.CNFG),
}

// Get returns a logger of a specific subsystem.
func Get(tag string) (logger *Logger, ok bool) {
	logger, ok = subsystemLoggers[tag]
	return
}

// InitLog attaches log file and error log file to the backend log, together
// with a stdout destination for info and above.
func InitLog(logFile, errLogFile string) {
	err := backendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stdout to the logger: %s", err)
		os.Exit(1)
	}
	err = backendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s",
			logFile, LevelTrace, err)
		os.Exit(1)
	}
	err = backendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s",
			errLogFile, LevelWarn, err)
		os.Exit(1)
	}
}

// SetLogLevel sets the logging level for the provided subsystem. Invalid
// subsystems and levels are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return
	}
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystemID := range subsystemLoggers {
		subsystems = append(subsystems, subsystemID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and
// set the levels accordingly. An appropriate error is returned if anything
// is invalid.
func ParseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if _, ok := LevelFromString(debugLevel); !ok {
			return fmt.Errorf("the specified debug level [%s] is invalid", debugLevel)
		}
		SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs and set the
	// levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%s]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsystemID, logLevel := fields[0], fields[1]

		if _, exists := subsystemLoggers[subsystemID]; !exists {
			return fmt.Errorf("the specified subsystem [%s] is invalid; "+
				"supported subsystems are %v", subsystemID, SupportedSubsystems())
		}
		if _, ok := LevelFromString(logLevel); !ok {
			return fmt.Errorf("the specified debug level [%s] is invalid", logLevel)
		}

		SetLogLevel(subsystemID, logLevel)
	}
	return nil
}

// BackendLog returns the backend log, so callers can attach extra
// destinations or close it on shutdown.
func BackendLog() *Backend {
	return backendLog
}
