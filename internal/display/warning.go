package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out. The title line is yellow when colour
// output is enabled.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString(color.YellowString("Warning: %s", w.Title))
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, item := range w.Items {
		b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
	}

	if w.Suggestion != "" {
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, b.String())
}

// WarnSkippedDirectories creates the end-of-run warning listing directories
// that could not be searched.
func WarnSkippedDirectories(dirs []string) Warning {
	noun := "directories"
	if len(dirs) == 1 {
		noun = "directory"
	}
	return Warning{
		Title:      fmt.Sprintf("%d %s could not be searched", len(dirs), noun),
		Message:    "Results below these paths are incomplete:",
		Items:      dirs,
		Suggestion: "Check permissions, or rerun with --debug for details.",
	}
}
