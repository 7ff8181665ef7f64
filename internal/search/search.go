// Package search runs the findfiles pipeline up to the point where the
// records are ready to be displayed or executed against: the pattern is
// compiled, the directory tree is walked, and the results are filtered by
// date and sorted.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harrison/findfiles/internal/fileutil"
	"github.com/harrison/findfiles/internal/filter"
	"github.com/harrison/findfiles/internal/models"
	"github.com/harrison/findfiles/internal/pattern"
	"github.com/harrison/findfiles/internal/sorter"
)

// DefaultPattern is used when no pattern is given.
const DefaultPattern = "*"

// Options describes one search.
type Options struct {
	// Directory is the root of the walk.
	Directory string
	// Pattern is a wildcard or, with UseRegex, a regular expression.
	Pattern  string
	UseRegex bool
	// Shallow restricts the walk to the root's immediate entries.
	Shallow bool
	// PathMatch tests the pattern against the full path instead of the name.
	PathMatch bool
	// SortSpec is a compact key string such as "s-m".
	SortSpec string
	Window   models.DateWindow
	// Command is the raw command template; empty means display mode.
	Command string
	DryRun  bool
	Debug   bool
}

// Describe returns the effective options, one "name: value" line each.
func (o Options) Describe() []string {
	command := o.Command
	if command == "" {
		command = "(none)"
	}
	return []string{
		fmt.Sprintf("directory: %s", o.Directory),
		fmt.Sprintf("pattern: %s", o.Pattern),
		fmt.Sprintf("regex: %t", o.UseRegex),
		fmt.Sprintf("shallow: %t", o.Shallow),
		fmt.Sprintf("path match: %t", o.PathMatch),
		fmt.Sprintf("sort: %s", sorter.FormatKeys(sorter.ParseKeys(o.SortSpec))),
		fmt.Sprintf("date window: %s", describeWindow(o.Window)),
		fmt.Sprintf("command: %s", command),
		fmt.Sprintf("dry run: %t", o.DryRun),
	}
}

func describeWindow(w models.DateWindow) string {
	if w.IsZero() {
		return "(none)"
	}
	var parts []string
	add := func(name string, t *time.Time) {
		if t != nil {
			parts = append(parts, name+"="+t.Format(time.RFC3339))
		}
	}
	add("created-from", w.CreatedFrom)
	add("created-to", w.CreatedTo)
	add("modified-from", w.ModifiedFrom)
	add("modified-to", w.ModifiedTo)
	return strings.Join(parts, " ")
}

// Logger receives pipeline diagnostics.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Result is the outcome of a search.
type Result struct {
	// Records are the matched, filtered and sorted files.
	Records []models.FileRecord
	// Scanned counts the records found before date filtering.
	Scanned int
	// Skipped holds one *fileutil.DirError per unreadable directory.
	Skipped []error
	// Duration is the wall time of the whole search.
	Duration time.Duration
}

// SkippedDirs returns the paths of the directories that could not be read.
func (r *Result) SkippedDirs() []string {
	dirs := make([]string, 0, len(r.Skipped))
	for _, err := range r.Skipped {
		if de, ok := err.(*fileutil.DirError); ok {
			dirs = append(dirs, de.Path)
		} else {
			dirs = append(dirs, err.Error())
		}
	}
	return dirs
}

// Searcher runs searches against a directory reader.
type Searcher struct {
	Reader fileutil.DirReader
	Logger Logger
}

// New returns a Searcher over the operating system's file systems.
func New(logger Logger) *Searcher {
	return &Searcher{Reader: fileutil.OSReader{}, Logger: logger}
}

// Compile returns the matcher described by opts.
func Compile(opts Options) (*pattern.Matcher, error) {
	raw := opts.Pattern
	if raw == "" {
		raw = DefaultPattern
	}

	mode := pattern.Wildcard
	if opts.UseRegex {
		mode = pattern.Regex
	}
	target := pattern.FileName
	if opts.PathMatch {
		target = pattern.FullPath
	}

	return pattern.Compile(raw, mode, target)
}

// Run compiles the pattern, walks opts.Directory, filters by date and
// sorts. Unreadable directories, the root included, are reported in
// Result.Skipped and do not fail the search; an invalid pattern does.
func (s *Searcher) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	matcher, err := Compile(opts)
	if err != nil {
		return nil, err
	}

	if opts.Directory == "" {
		return nil, fmt.Errorf("no directory to search")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logDebug(fmt.Sprintf("compiled pattern %q as %s", matcher.Raw(), matcher.String()))

	scan := fileutil.Walk(opts.Directory, fileutil.WalkOptions{
		Matcher:   matcher,
		Recursive: !opts.Shallow,
		Reader:    s.Reader,
		Logger:    s.Logger,
	})

	records := filter.ByDate(scan.Records, opts.Window)
	if dropped := len(scan.Records) - len(records); dropped > 0 {
		s.logDebug(fmt.Sprintf("date window excluded %d of %d files", dropped, len(scan.Records)))
	}

	records = sorter.Sort(records, sorter.ParseKeys(opts.SortSpec))

	return &Result{
		Records:  records,
		Scanned:  len(scan.Records),
		Skipped:  scan.Errors,
		Duration: time.Since(start),
	}, nil
}

func (s *Searcher) logDebug(message string) {
	if s.Logger != nil {
		s.Logger.LogDebug(message)
	}
}
