package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
)

// DirEntry is one entry of a directory listing with the metadata the walker
// needs. For regular files every field comes from a single metadata read.
type DirEntry struct {
	Name      string
	IsDir     bool
	IsRegular bool
	Created   time.Time
	Modified  time.Time
	Size      uint64
}

// DirReader enumerates the entries of a single directory.
type DirReader interface {
	// ReadDir returns the entries of dir in enumeration order, or an error
	// when the directory cannot be opened or read.
	ReadDir(dir string) ([]DirEntry, error)
}

// OSReader reads directories from the local filesystem. Entries come back
// in the order the operating system yields them; no sort is applied.
type OSReader struct{}

// ReadDir implements DirReader.
func (OSReader) ReadDir(dir string) ([]DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []DirEntry
	for {
		batch, err := f.ReadDir(256)
		for _, d := range batch {
			entry, ok := describe(dir, d)
			if ok {
				entries = append(entries, entry)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read directory: %w", err)
		}
	}

	return entries, nil
}

// describe converts a directory entry into a DirEntry. Entries whose
// metadata cannot be read (for example removed mid-walk) are dropped.
// Symlinks are resolved once: a link to a regular file is reported with the
// target's metadata, a link to a directory is reported as neither a
// directory nor a regular file so it is never followed.
func describe(dir string, d fs.DirEntry) (DirEntry, bool) {
	entry := DirEntry{Name: d.Name()}

	if d.IsDir() {
		entry.IsDir = true
		return entry, true
	}

	var info fs.FileInfo
	var err error
	if d.Type()&fs.ModeSymlink != 0 {
		info, err = os.Stat(filepath.Join(dir, d.Name()))
		if err == nil && info.IsDir() {
			return entry, true
		}
	} else {
		info, err = d.Info()
	}
	if err != nil {
		return DirEntry{}, false
	}

	if !info.Mode().IsRegular() {
		return entry, true
	}

	ts := times.Get(info)
	entry.IsRegular = true
	entry.Modified = ts.ModTime().UTC()
	entry.Created = creationTime(ts)
	if info.Size() > 0 {
		entry.Size = uint64(info.Size())
	}

	return entry, true
}

// creationTime returns the birth time when the platform records one. On
// filesystems without birth times the inode change time stands in, and the
// modification time is the last resort.
func creationTime(ts times.Timespec) time.Time {
	switch {
	case ts.HasBirthTime():
		return ts.BirthTime().UTC()
	case ts.HasChangeTime():
		return ts.ChangeTime().UTC()
	default:
		return ts.ModTime().UTC()
	}
}
