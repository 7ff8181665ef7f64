package models

import (
	"path/filepath"
	"strings"
	"time"
)

// FileRecord is the metadata snapshot of one matched regular file.
// All fields are captured from a single metadata read during the walk.
type FileRecord struct {
	Path     string    // Absolute path, platform separator
	Created  time.Time // Creation (birth) time, UTC
	Modified time.Time // Last modification time, UTC
	Size     uint64    // Size in bytes
}

// Name returns everything after the last path separator.
func (r FileRecord) Name() string {
	_, name := SplitPath(r.Path)
	return name
}

// Dir returns everything before the last path separator, or "." when the
// path has no separator.
func (r FileRecord) Dir() string {
	dir, _ := SplitPath(r.Path)
	return dir
}

// SplitPath splits path at the last platform separator.
func SplitPath(path string) (dir, name string) {
	return SplitPathSep(path, filepath.Separator)
}

// SplitPathSep splits path at the last occurrence of sep. The directory is
// "." when sep does not occur in path.
func SplitPathSep(path string, sep byte) (dir, name string) {
	i := strings.LastIndexByte(path, sep)
	if i < 0 {
		return ".", path
	}
	return path[:i], path[i+1:]
}
