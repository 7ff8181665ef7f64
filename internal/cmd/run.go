package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/findfiles/internal/config"
	"github.com/harrison/findfiles/internal/display"
	"github.com/harrison/findfiles/internal/executor"
	"github.com/harrison/findfiles/internal/filelock"
	"github.com/harrison/findfiles/internal/filter"
	"github.com/harrison/findfiles/internal/logger"
	"github.com/harrison/findfiles/internal/search"
)

// runSearch implements the root command
func runSearch(cmd *cobra.Command, args []string) error {
	directory := args[0]
	pattern := search.DefaultPattern
	if len(args) > 1 {
		pattern = args[1]
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(directory, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.MergeWithFlags(flagOverrides(cmd))

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	mode, err := display.ParseMode(cfg.Display.Mode)
	if err != nil {
		return err
	}

	createdFrom, _ := cmd.Flags().GetString("created-from")
	createdTo, _ := cmd.Flags().GetString("created-to")
	modifiedFrom, _ := cmd.Flags().GetString("modified-from")
	modifiedTo, _ := cmd.Flags().GetString("modified-to")
	window, err := filter.ParseWindow(createdFrom, createdTo, modifiedFrom, modifiedTo)
	if err != nil {
		return err
	}

	command, _ := cmd.Flags().GetString("execute")
	useRegex, _ := cmd.Flags().GetBool("regex")
	shallow, _ := cmd.Flags().GetBool("shallow")
	pathMatch, _ := cmd.Flags().GetBool("path-match")
	debug, _ := cmd.Flags().GetBool("debug")

	opts := search.Options{
		Directory: directory,
		Pattern:   pattern,
		UseRegex:  useRegex,
		Shallow:   shallow,
		PathMatch: pathMatch,
		SortSpec:  cfg.Sort,
		Window:    window,
		Command:   command,
		DryRun:    cfg.Execute.DryRun,
		Debug:     debug,
	}

	log, closeLog, err := newRunLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.Debug {
		log.LogDebug(fmt.Sprintf("display: %s", describeDisplay(mode, cfg.Display)))
		for _, line := range opts.Describe() {
			log.LogDebug(line)
		}
	}

	ctx := cmd.Context()

	result, err := search.New(log).Run(ctx, opts)
	if err != nil {
		return err
	}
	log.LogSearchComplete(len(result.Records), len(result.Skipped), result.Duration)

	defer warnSkipped(cmd.ErrOrStderr(), result)

	if opts.Command != "" {
		return runCommands(cmd, cfg, log, opts, result)
	}

	formatter := display.Formatter{
		Mode:          mode,
		Concise:       cfg.Display.Concise,
		Group:         cfg.Display.Group,
		SharedHeaders: cfg.Display.SharedHeaders,
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		formatter.Width = widthFor(nil, cfg.Display)
		render := func(w io.Writer) error { return formatter.Render(w, result.Records) }
		if err := filelock.WriteOutput(ctx, output, render); err != nil {
			return err
		}
		log.LogInfo(fmt.Sprintf("Wrote %d files to %s", len(result.Records), output))
		return nil
	}

	out := cmd.OutOrStdout()
	formatter.Width = widthFor(out, cfg.Display)
	return formatter.Render(out, result.Records)
}

// runCommands runs the command template for every record and reports the
// summary. It returns an error wrapping executor.ErrCommandsFailed when any
// command failed.
func runCommands(cmd *cobra.Command, cfg *config.Config, log logger.RunLogger, opts search.Options, result *search.Result) error {
	start := time.Now()

	spawner := executor.NewOSSpawner()
	spawner.Stdin = cmd.InOrStdin()
	spawner.Stdout = cmd.OutOrStdout()
	spawner.Stderr = cmd.ErrOrStderr()

	exec := executor.New(spawner, cmd.OutOrStdout(), log)
	exec.ShowSource = cfg.Execute.ShowSource
	exec.FailOnExitCode = cfg.Execute.FailOnExitCode
	if !opts.DryRun {
		exec.Progress = log.LogProgress
	}

	tmpl := executor.ParseTemplate(opts.Command)
	summary := exec.Run(cmd.Context(), tmpl, result.Records, opts.DryRun)
	log.LogSummary(summary, time.Since(start))

	if summary.Failed() {
		return fmt.Errorf("%w (%d of %d): %v", executor.ErrCommandsFailed, summary.Failures, len(result.Records), summary.ErrorOrNil())
	}
	return nil
}

// newRunLogger builds the console logger on w, plus a file logger when a
// log directory is configured. The returned func closes the file logger.
func newRunLogger(w io.Writer, cfg *config.Config) (logger.RunLogger, func(), error) {
	level := cfg.LogLevel
	console := logger.NewConsoleLogger(w, level)

	if cfg.LogDir == "" {
		return console, func() {}, nil
	}

	// The run log keeps at least INFO detail
	fileLevel := level
	if level == "warn" || level == "error" {
		fileLevel = "info"
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, fileLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	console.LogDebug(fmt.Sprintf("Run log: %s", fileLog.Path()))
	if err := fileLog.LinkError(); err != nil {
		console.LogWarn(fmt.Sprintf("latest.log not updated: %v", err))
	}

	closeLog := func() {
		if err := fileLog.Close(); err != nil {
			console.LogWarn(fmt.Sprintf("failed to close run log: %v", err))
		}
	}
	return logger.NewMultiLogger(console, fileLog), closeLog, nil
}

// widthFor picks the table width: the configured width when set, otherwise
// the width of out when it is a terminal.
func widthFor(out io.Writer, d config.DisplayConfig) display.WidthProvider {
	if d.Width > 0 {
		return display.FixedWidth(d.Width)
	}
	f, _ := out.(*os.File)
	return display.TerminalWidth{File: f, Fallback: d.FallbackWidth}
}

func describeDisplay(mode display.Mode, d config.DisplayConfig) string {
	parts := []string{mode.String()}
	if d.Concise {
		parts = append(parts, "concise")
	}
	if d.Group {
		parts = append(parts, "grouped")
	}
	if d.SharedHeaders {
		parts = append(parts, "shared headers")
	}
	return strings.Join(parts, ", ")
}

func warnSkipped(w io.Writer, result *search.Result) {
	if len(result.Skipped) == 0 {
		return
	}
	fmt.Fprintln(w)
	display.WarnSkippedDirectories(result.SkippedDirs()).Display(w)
}

// flagOverrides collects the flags that were set explicitly on the command
// line so they take precedence over configuration values.
func flagOverrides(cmd *cobra.Command) config.FlagOverrides {
	flags := cmd.Flags()
	var o config.FlagOverrides

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	o.LogLevel = stringFlag("log-level")
	o.LogDir = stringFlag("log-dir")
	o.Sort = stringFlag("sort")
	o.Concise = boolFlag("concise")
	o.Group = boolFlag("group")
	o.SharedHeaders = boolFlag("shared-headers")
	o.DryRun = boolFlag("dry-run")
	o.ShowSource = boolFlag("show-source")
	o.FailOnExitCode = boolFlag("fail-on-exit-code")

	if flags.Changed("width") {
		width, _ := flags.GetInt("width")
		o.Width = &width
	}

	// --debug lowers the console level unless --log-level says otherwise
	if debug, _ := flags.GetBool("debug"); debug && o.LogLevel == nil {
		level := "debug"
		o.LogLevel = &level
	}

	var mode string
	if tab, _ := flags.GetBool("tab"); tab {
		mode = display.ModeTab.String()
	}
	if bare, _ := flags.GetBool("bare"); bare {
		mode = display.ModeBare.String()
		concise := true
		o.Concise = &concise
	}
	if mode != "" {
		o.Mode = &mode
	}

	return o
}
