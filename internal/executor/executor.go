// Package executor runs a command template once per file record.
//
// A template is plain text with %d, %n and %f placeholders that expand to
// the quoted directory, file name and full path of a record. Commands run
// one at a time in record order, each blocking until its process exits.
// A command that cannot be launched is reported and skipped; the remaining
// records are still processed.
package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/harrison/findfiles/internal/models"
)

// Logger is the diagnostic sink used while executing commands.
type Logger interface {
	LogDebug(message string)
	LogError(message string)
}

// Executor expands a template for each record and runs it through a Spawner.
type Executor struct {
	Spawner Spawner
	Out     io.Writer // dry-run listing; discarded when nil
	Logger  Logger    // optional

	// ShowSource prefixes each dry-run line with the source file path.
	ShowSource bool
	// FailOnExitCode counts a non-zero exit status as a failure. By default
	// only launch failures count.
	FailOnExitCode bool

	// Progress, when set, receives the 1-based position of each record
	// before it is processed.
	Progress func(done, total int, path string)
}

// New creates an Executor that writes dry-run output to out.
func New(spawner Spawner, out io.Writer, logger Logger) *Executor {
	return &Executor{
		Spawner: spawner,
		Out:     out,
		Logger:  logger,
	}
}

// Result describes the outcome of running the template for one record.
type Result struct {
	Path     string
	Command  string
	DryRun   bool
	Launched bool
	ExitCode int
	Success  bool
	Err      error // *LaunchError or *ExitStatusError when Success is false
}

// Summary aggregates the results of a Run.
type Summary struct {
	Total    int
	Launched int
	Failures int
	DryRun   bool
	Err      *multierror.Error
}

// Failed reports whether any command failed. It is always false for a dry
// run.
func (s *Summary) Failed() bool {
	return s.Failures > 0
}

// ErrorOrNil returns the aggregated failures, or nil when there were none.
func (s *Summary) ErrorOrNil() error {
	return s.Err.ErrorOrNil()
}

// Execute runs tmpl for a single record. With dryRun set the command line is
// written to Out and no process is started.
func (e *Executor) Execute(ctx context.Context, tmpl Template, rec models.FileRecord, dryRun bool) Result {
	line := tmpl.Expand(rec.Path)
	res := Result{Path: rec.Path, Command: line, DryRun: dryRun}

	if dryRun {
		e.printDryRun(rec.Path, line)
		res.Success = true
		return res
	}

	e.logDebug(fmt.Sprintf("executing: %s", line))

	code, err := e.Spawner.Spawn(ctx, line)
	if err != nil {
		launchErr := &LaunchError{Path: rec.Path, Command: line, Err: err}
		e.logError(launchErr.Error())
		res.Err = launchErr
		return res
	}

	res.Launched = true
	res.ExitCode = code
	res.Success = true

	if code != 0 {
		if e.FailOnExitCode {
			statusErr := &ExitStatusError{Path: rec.Path, Command: line, ExitCode: code}
			e.logError(statusErr.Error())
			res.Success = false
			res.Err = statusErr
		} else {
			e.logDebug(fmt.Sprintf("command for %s exited with status %d", rec.Path, code))
		}
	}

	return res
}

// Run executes tmpl for each record in order. It stops early only when ctx
// is cancelled outside a dry run; the cancellation error is then part of
// the summary.
func (e *Executor) Run(ctx context.Context, tmpl Template, records []models.FileRecord, dryRun bool) *Summary {
	summary := &Summary{DryRun: dryRun}

	for i, rec := range records {
		if err := ctx.Err(); err != nil && !dryRun {
			summary.Err = multierror.Append(summary.Err, err)
			summary.Failures++
			break
		}

		if e.Progress != nil {
			e.Progress(i+1, len(records), rec.Path)
		}

		res := e.Execute(ctx, tmpl, rec, dryRun)
		summary.Total++
		if res.Launched {
			summary.Launched++
		}
		if !res.Success {
			summary.Failures++
			summary.Err = multierror.Append(summary.Err, res.Err)
		}
	}

	return summary
}

func (e *Executor) printDryRun(path, line string) {
	if e.Out == nil {
		return
	}
	if e.ShowSource {
		fmt.Fprintf(e.Out, "%s: %s\n", path, line)
		return
	}
	fmt.Fprintln(e.Out, line)
}

func (e *Executor) logDebug(msg string) {
	if e.Logger != nil {
		e.Logger.LogDebug(msg)
	}
}

func (e *Executor) logError(msg string) {
	if e.Logger != nil {
		e.Logger.LogError(msg)
	}
}
