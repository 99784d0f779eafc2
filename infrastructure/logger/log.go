package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemsMutex sync.Mutex
	subsystems      = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger for the given subsystem tag, creating
// it on first use. Subsequent calls with the same tag return the same logger,
// so package-level log variables all share one instance per subsystem.
func RegisterSubSystem(subsystemTag string) *Logger {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	log, ok := subsystems[subsystemTag]
	if !ok {
		log = BackendLog.Logger(subsystemTag)
		subsystems[subsystemTag] = log
	}
	return log
}

// InitLog attaches log file and error log file to the backend log and starts
// the backend.
func InitLog(logFile, errLogFile string) {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n",
			logFile, LevelTrace, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n",
			errLogFile, LevelWarn, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stdout to the logger: %s\n", err)
		os.Exit(1)
	}
	err = BackendLog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the logger: %s ", err)
		os.Exit(1)
	}
}

// SetLogLevels sets the logging level of all registered subsystems.
func SetLogLevels(level string) error {
	lvl, ok := LevelFromString(level)
	if !ok {
		return errors.Errorf("Invalid log level %s", level)
	}

	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()
	for _, log := range subsystems {
		log.SetLevel(lvl)
	}
	return nil
}
