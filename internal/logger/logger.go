// Package logger provides the diagnostic sinks used by findfiles.
//
// Diagnostics are levelled (trace, debug, info, warn, error) and written as
// "[HH:MM:SS] [LEVEL] message" lines, to the console, to a per-run log file,
// or to both through a MultiLogger. Implementations are safe for use from
// several goroutines.
package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/findfiles/internal/executor"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is the levelled diagnostic sink.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// RunLogger adds the run-level reports to Logger.
type RunLogger interface {
	Logger
	LogSearchComplete(found, skipped int, duration time.Duration)
	LogProgress(done, total int, path string)
	LogSummary(summary *executor.Summary, duration time.Duration)
}

// ValidLevel reports whether level names a log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if ValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "250ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// MultiLogger fans every message out to several loggers. Run-level reports
// reach only the members that implement RunLogger.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger. Nil entries are dropped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// LogTrace forwards a trace-level message.
func (m *MultiLogger) LogTrace(message string) {
	for _, l := range m.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards a debug-level message.
func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards an info-level message.
func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards a warning-level message.
func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

// LogError forwards an error-level message.
func (m *MultiLogger) LogError(message string) {
	for _, l := range m.loggers {
		l.LogError(message)
	}
}

// LogSearchComplete forwards the search report.
func (m *MultiLogger) LogSearchComplete(found, skipped int, duration time.Duration) {
	for _, l := range m.loggers {
		if rl, ok := l.(RunLogger); ok {
			rl.LogSearchComplete(found, skipped, duration)
		}
	}
}

// LogProgress forwards execution progress.
func (m *MultiLogger) LogProgress(done, total int, path string) {
	for _, l := range m.loggers {
		if rl, ok := l.(RunLogger); ok {
			rl.LogProgress(done, total, path)
		}
	}
}

// LogSummary forwards the execution summary.
func (m *MultiLogger) LogSummary(summary *executor.Summary, duration time.Duration) {
	for _, l := range m.loggers {
		if rl, ok := l.(RunLogger); ok {
			rl.LogSummary(summary, duration)
		}
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(string) {}
func (n *NoOpLogger) LogDebug(string) {}
func (n *NoOpLogger) LogInfo(string) {}
func (n *NoOpLogger) LogWarn(string) {}
func (n *NoOpLogger) LogError(string) {}
func (n *NoOpLogger) LogSearchComplete(int, int, time.Duration) {}
func (n *NoOpLogger) LogProgress(int, int, string) {}
func (n *NoOpLogger) LogSummary(*executor.Summary, time.Duration) {}
