package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/findfiles/internal/executor"
)

// FileLogger writes diagnostics for one run to a file in a log directory.
// Each run gets its own run-YYYYMMDD-HHMMSS-<id>.log file, and a
// latest.log symlink in the same directory points at the newest one.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	linkErr  error
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir at the given level, creating
// the directory if needed.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.NewString()
	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", ts, runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
		linkErr:  updateLatestLink(logDir, runFile),
	}

	fl.writeRunLog("=== findfiles run log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// updateLatestLink points latest.log in logDir at runFile.
func updateLatestLink(logDir, runFile string) error {
	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			return fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// LinkError reports why latest.log could not be updated. The run log is
// still written when it is non-nil.
func (fl *FileLogger) LinkError() error {
	return fl.linkErr
}

// Path returns the path of the run log file.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// RunID returns the identifier written in the run log header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSearchComplete records the size of the result set at INFO level.
func (fl *FileLogger) LogSearchComplete(found, skipped int, duration time.Duration) {
	if !fl.shouldLog("info") {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] Search complete: %d files (%d directories skipped) in %s\n",
		timestamp(), found, skipped, formatDuration(duration)))
}

// LogProgress records each executed file at DEBUG level.
func (fl *FileLogger) LogProgress(done, total int, path string) {
	if !fl.shouldLog("debug") {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%d/%d] %s\n", timestamp(), done, total, path))
}

// LogSummary records the execution summary followed by every failure.
func (fl *FileLogger) LogSummary(summary *executor.Summary, duration time.Duration) {
	if summary == nil {
		return
	}

	ts := timestamp()
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] === Execution Summary ===\n", ts)
	fmt.Fprintf(&sb, "[%s] %s\n", ts, formatSummaryCounts(summary, false))
	fmt.Fprintf(&sb, "[%s] Duration: %s\n", ts, formatDuration(duration))

	if summary.Err != nil {
		fmt.Fprintf(&sb, "[%s] Failures:\n", ts)
		for _, err := range summary.Err.Errors {
			fmt.Fprintf(&sb, "[%s]   - %v\n", ts, err)
		}
	}

	fl.writeRunLog(sb.String())
}

// Close flushes and closes the run log file.
// It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
