package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/findfiles/internal/executor"
)

// colorScheme defines consistent colors for summary counts.
// Green: success, Red: failure, Cyan: labels.
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	label   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		label:   color.New(color.FgCyan),
	}
}

// colorLevel colours a level tag for console output.
func colorLevel(level string) string {
	switch strings.ToUpper(level) {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// formatSummaryCounts renders the counts of an execution summary.
// Format: "files: N, launched: N, failed: N"
// A dry run reports "files: N, listed: N" since nothing was launched.
func formatSummaryCounts(summary *executor.Summary, colorOutput bool) string {
	if !colorOutput {
		if summary.DryRun {
			return fmt.Sprintf("files: %d, listed: %d", summary.Total, summary.Total)
		}
		return fmt.Sprintf("files: %d, launched: %d, failed: %d",
			summary.Total, summary.Launched, summary.Failures)
	}

	scheme := newColorScheme()
	parts := []string{
		fmt.Sprintf("%s: %d", scheme.label.Sprint("files"), summary.Total),
	}

	if summary.DryRun {
		parts = append(parts, fmt.Sprintf("%s: %d", scheme.label.Sprint("listed"), summary.Total))
		return strings.Join(parts, ", ")
	}

	parts = append(parts, fmt.Sprintf("%s: %s",
		scheme.success.Sprint("launched"), scheme.success.Sprintf("%d", summary.Launched)))

	if summary.Failures > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s",
			scheme.fail.Sprint("failed"), scheme.fail.Sprintf("%d", summary.Failures)))
	} else {
		parts = append(parts, fmt.Sprintf("failed: %d", summary.Failures))
	}

	return strings.Join(parts, ", ")
}
