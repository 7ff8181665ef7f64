package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/findfiles/internal/executor"
)

// ConsoleLogger logs diagnostics to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// fatih/color already honours NO_COLOR and non-TTY output
		return !color.NoColor
	}

	return false
}

// Level returns the configured minimum level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// LogSearchComplete reports the size of the result set at INFO level.
// Format: "[HH:MM:SS] Search complete: <n> files (<skipped> directories skipped) in <d>"
func (cl *ConsoleLogger) LogSearchComplete(found, skipped int, duration time.Duration) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	label := "Search complete"
	skippedText := fmt.Sprintf("%d directories skipped", skipped)
	if cl.colorOutput {
		label = color.New(color.Bold).Sprint(label)
		if skipped > 0 {
			skippedText = color.New(color.FgYellow).Sprint(skippedText)
		}
	}

	fmt.Fprintf(cl.writer, "[%s] %s: %d files (%s) in %s\n",
		timestamp(), label, found, skippedText, formatDuration(duration))
}

// LogProgress logs execute-mode progress at INFO level.
// Format: "[HH:MM:SS] Progress: [===   ] 3/8 (37%) <path>"
func (cl *ConsoleLogger) LogProgress(done, total int, path string) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	pb := NewProgressBar(total, 10, cl.colorOutput)
	pb.Update(done)

	fmt.Fprintf(cl.writer, "[%s] Progress: %s %s\n", timestamp(), pb.Render(), path)
}

// LogSummary logs the execute-mode summary at INFO level, or at WARN level
// when a command failed so that failures are visible with default settings.
func (cl *ConsoleLogger) LogSummary(summary *executor.Summary, duration time.Duration) {
	if cl.writer == nil || summary == nil {
		return
	}

	level := "info"
	if summary.Failed() {
		level = "warn"
	}
	if !cl.shouldLog(level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	header := "=== Execution Summary ==="
	if summary.DryRun {
		header = "=== Dry Run Summary ==="
	}
	if cl.colorOutput {
		header = color.New(color.Bold).Sprint(header)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s\n", ts, header)
	fmt.Fprintf(&sb, "[%s] %s\n", ts, formatSummaryCounts(summary, cl.colorOutput))
	fmt.Fprintf(&sb, "[%s] Duration: %s\n", ts, formatDuration(duration))

	cl.writer.Write([]byte(sb.String()))
}
