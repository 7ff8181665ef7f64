package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for findfiles
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findfiles <directory> [pattern]",
		Short: "Find files by name, path or date and list them or run a command on each",
		Long: `findfiles searches a directory tree for files whose name (or, with
--path-match, full path) matches a DOS wildcard or a regular expression.

Matches can be restricted to a creation or modification date window and
sorted by path, name, size, creation date or modification date. They are
either listed in columns or passed one at a time to a command template.

Command templates expand %d to the file's directory, %n to its name and
%f to its full path, each quoted.

Configuration is layered: built-in defaults, the user config
(FINDFILES_HOME or <user config dir>/findfiles/config.yaml), the project
config (<directory>/.findfiles/config.yaml, or --config), FINDFILES_*
environment variables, and finally command line flags.

Examples:
  # List every Go file below the current directory
  findfiles . "*.go"

  # Largest first, then newest first
  findfiles ~/Downloads --sort "-s-m"

  # Regex against the full path, shallow, bare output for scripting
  findfiles /var/log "nginx.*\.gz$" -r -p -s -b

  # Files modified during January 2024
  findfiles . --modified-from 2024/01/01 --modified-to 2024/02/01

  # Preview, then run, a command for each match
  findfiles src "*.orig" -x "rm %f" -n
  findfiles src "*.orig" -x "rm %f"`,
		Args:    cobra.RangeArgs(1, 2),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once
		SilenceErrors: true,
		RunE:          runSearch,
	}

	flags := cmd.Flags()

	// Matching
	flags.BoolP("regex", "r", false, "Treat the pattern as a regular expression instead of a DOS wildcard")
	flags.BoolP("shallow", "s", false, "Do not recurse into subdirectories")
	flags.BoolP("path-match", "p", false, "Match the pattern against the full path instead of the file name")

	// Execution
	flags.StringP("execute", "x", "", "Run a command for each file (%d = directory, %n = name, %f = full path)")
	flags.BoolP("dry-run", "n", false, "Print the commands --execute would run without running them")
	flags.Bool("show-source", false, "Prefix dry-run commands with the file they were built for")
	flags.Bool("fail-on-exit-code", false, "Count a non-zero command exit status as a failure")

	// Display
	flags.BoolP("tab", "t", false, "Separate columns with a single tab (better for parsing)")
	flags.BoolP("concise", "c", false, "Display results without headers or summary")
	flags.BoolP("bare", "b", false, "Display only file paths (implies --concise)")
	flags.BoolP("group", "g", false, "Group results by directory")
	flags.Bool("shared-headers", false, "With --group, print column headers once instead of per directory")
	flags.String("sort", "", "Sort keys: p=path n=name s=size c=created m=modified, '-' before a key for descending (default \"p\")")
	flags.Int("width", 0, "Table width in columns (0 = detect from the terminal)")
	flags.StringP("output", "o", "", "Write the listing to this file instead of stdout")

	// Date window
	flags.String("created-from", "", "Only files created at or after this date")
	flags.String("created-to", "", "Only files created before this date")
	flags.String("modified-from", "", "Only files modified at or after this date")
	flags.String("modified-to", "", "Only files modified before this date")

	// Diagnostics and configuration
	flags.BoolP("debug", "d", false, "Show detailed debug information during the search")
	flags.String("log-level", "", "Console log level: trace, debug, info, warn, error")
	flags.String("log-dir", "", "Also write a per-run log file to this directory")
	flags.String("config", "", "Path to config file (default: <directory>/.findfiles/config.yaml)")

	cmd.MarkFlagsMutuallyExclusive("tab", "bare")
	cmd.MarkFlagsMutuallyExclusive("execute", "output")
	cmd.SetVersionTemplate("findfiles version {{.Version}}\n")

	return cmd
}
