package logging

import (
	"fmt"
	"strings"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	// LogLevelDebug is for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is for error messages
	LogLevelError LogLevel = "error"
)

var (
	// App is the global application logger
	App *AppLogger
	// Ops is the global operation logger for player-facing actions
	Ops OpsLogger
)

func init() {
	// Initialize no-op loggers so packages can log before Initialize runs
	var err error

	App, err = NewAppLogger("", LogLevelInfo, 0, 0)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default app logger: %v", err))
	}

	Ops, err = NewOpsLogger("")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default ops logger: %v", err))
	}
}

// Initialize sets up the global loggers
func Initialize(opsLogPath, appLogPath string, level LogLevel) error {
	if level == "" {
		level = LogLevelInfo
	}

	newOps, err := NewOpsLogger(opsLogPath)
	if err != nil {
		return fmt.Errorf("failed to initialize ops logger: %w", err)
	}

	newApp, err := NewAppLogger(appLogPath, level, 10*1024*1024, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to initialize app logger: %w", err)
	}

	Ops = newOps
	App = newApp

	return nil
}

// formatValue formats a value for logfmt, quoting if necessary
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if strings.ContainsAny(s, " =\"") {
		s = strings.ReplaceAll(s, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}
