package fileutil

import (
	"fmt"
	"path/filepath"

	"github.com/harrison/findfiles/internal/models"
	"github.com/harrison/findfiles/internal/pattern"
)

// Logger receives walker diagnostics. Implementations must tolerate being
// called from the walk of any directory.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// WalkOptions configures a directory walk.
type WalkOptions struct {
	// Matcher selects which regular files become records. Required.
	Matcher *pattern.Matcher
	// Recursive descends into subdirectories; when false only the root's
	// immediate entries are considered.
	Recursive bool
	// Reader enumerates directories. Defaults to OSReader.
	Reader DirReader
	// Logger receives per-directory debug lines and traversal warnings.
	// May be nil.
	Logger Logger
}

// ScanResult contains the results of a walk.
type ScanResult struct {
	// Records holds the matched files in traversal order.
	Records []models.FileRecord
	// Errors holds one *DirError per directory that could not be read.
	Errors []error
}

// DirError reports a directory that could not be opened or read. The
// subtree below it contributed no records.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("error searching directory %s: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error {
	return e.Err
}

// Walk traverses root depth-first and returns a record for every regular
// file accepted by opts.Matcher. A directory that cannot be read is
// reported in ScanResult.Errors and skipped; the walk itself never fails.
func Walk(root string, opts WalkOptions) *ScanResult {
	if opts.Reader == nil {
		opts.Reader = OSReader{}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		dirErr := &DirError{Path: root, Err: err}
		if opts.Logger != nil {
			opts.Logger.LogWarn(dirErr.Error())
		}
		return &ScanResult{Records: []models.FileRecord{}, Errors: []error{dirErr}}
	}

	w := walker{opts: opts}
	partial := w.walkDir(absRoot)

	return &ScanResult{
		Records: partial.records,
		Errors:  partial.errs,
	}
}

// dirResult is the partial result of one directory and everything below it.
type dirResult struct {
	records []models.FileRecord
	errs    []error
}

func (r *dirResult) merge(child dirResult) {
	r.records = append(r.records, child.records...)
	r.errs = append(r.errs, child.errs...)
}

type walker struct {
	opts WalkOptions
}

// walkDir collects the records of dir. Subdirectory results are merged at
// the position the subdirectory was enumerated, giving pre-order output.
func (w *walker) walkDir(dir string) dirResult {
	result := dirResult{records: []models.FileRecord{}}

	if w.opts.Logger != nil {
		w.opts.Logger.LogDebug(fmt.Sprintf("searching %s for %s", dir, w.opts.Matcher.Raw()))
	}

	entries, err := w.opts.Reader.ReadDir(dir)
	if err != nil {
		dirErr := &DirError{Path: dir, Err: err}
		if w.opts.Logger != nil {
			w.opts.Logger.LogWarn(dirErr.Error())
		}
		result.errs = append(result.errs, dirErr)
		return result
	}

	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}

		fullPath := filepath.Join(dir, entry.Name)

		if entry.IsDir {
			if w.opts.Recursive {
				result.merge(w.walkDir(fullPath))
			}
			continue
		}

		if !entry.IsRegular {
			continue
		}

		if !w.opts.Matcher.Match(entry.Name, fullPath) {
			continue
		}

		result.records = append(result.records, models.FileRecord{
			Path:     fullPath,
			Created:  entry.Created,
			Modified: entry.Modified,
			Size:     entry.Size,
		})
	}

	return result
}
