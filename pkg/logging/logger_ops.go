package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// OpsLogger records player-facing operations (claims, crafts, equips, mints)
// in a consistent logfmt line per operation.
type OpsLogger interface {
	// LogOp logs a gameplay operation against a player record
	LogOp(operation string, wallet string, status string, details ...interface{})
	// LogMint logs a settlement attempt against the external chain service
	LogMint(wallet string, amount int, status string, details ...interface{})
}

type opsLogger struct {
	logger *log.Logger
}

// NewOpsLogger creates a new operation logger. An empty path discards output.
func NewOpsLogger(logPath string) (OpsLogger, error) {
	var writer io.Writer

	if logPath == "" {
		writer = io.Discard
	} else {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening ops log file: %w", err)
		}
		writer = f
	}

	return &opsLogger{
		logger: log.New(writer, "", 0),
	}, nil
}

func (l *opsLogger) LogOp(operation string, wallet string, status string, details ...interface{}) {
	var parts []string
	parts = append(parts, fmt.Sprintf("op=%s", formatValue(operation)))
	if wallet != "" {
		parts = append(parts, fmt.Sprintf("wallet=%s", formatValue(wallet)))
	}
	parts = append(parts, fmt.Sprintf("status=%s", formatValue(status)))

	for i := 0; i < len(details); i += 2 {
		if i+1 < len(details) {
			parts = append(parts, fmt.Sprintf("%v=%s", details[i], formatValue(details[i+1])))
		}
	}

	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 -0700")
	l.logger.Printf("%s %s", timestamp, strings.Join(parts, " "))
}

func (l *opsLogger) LogMint(wallet string, amount int, status string, details ...interface{}) {
	kv := append([]interface{}{"amount", amount}, details...)
	l.LogOp("MINT", wallet, status, kv...)
}
