// Copyright (c) 2026 Daleel Balady. All rights reserved.

package importer

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// ErrorLog is the append-only failure record for one import run. The file
// is truncated on open so each run's log covers only that run.
//
// Entry format, one block per failure:
//
//	[RFC3339 timestamp] message
//	cause detail (when present)
//	<blank line>
type ErrorLog struct {
	mu     sync.Mutex
	file   *os.File
	logger *slog.Logger
}

// OpenErrorLog truncates and opens the log file at path. A nil-safe
// zero-value ErrorLog (no file) only logs to the console, which keeps
// dry runs from touching the filesystem.
func OpenErrorLog(path string, logger *slog.Logger) (*ErrorLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open error log %s: %w", path, err)
	}
	return &ErrorLog{file: file, logger: logger}, nil
}

// NewConsoleErrorLog returns an ErrorLog that only logs, without a file.
func NewConsoleErrorLog(logger *slog.Logger) *ErrorLog {
	return &ErrorLog{logger: logger}
}

// Record logs a failure and appends it to the file. File write failures
// are reported to the console but never interrupt the import.
func (log *ErrorLog) Record(message string, cause error) {
	log.mu.Lock()
	defer log.mu.Unlock()

	if cause != nil {
		log.logger.Error(message, slog.String("error", cause.Error()))
	} else {
		log.logger.Error(message)
	}

	if log.file == nil {
		return
	}

	entry := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), message)
	if cause != nil {
		entry += "\n" + cause.Error()
	}
	entry += "\n\n"

	if _, err := log.file.WriteString(entry); err != nil {
		log.logger.Error("error_log_write_failed", slog.String("error", err.Error()))
	}
}

// Close flushes and closes the underlying file.
func (log *ErrorLog) Close() error {
	log.mu.Lock()
	defer log.mu.Unlock()

	if log.file == nil {
		return nil
	}
	err := log.file.Close()
	log.file = nil
	return err
}
