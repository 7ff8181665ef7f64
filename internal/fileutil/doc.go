// Package fileutil walks directory trees and turns matching files into
// records.
//
// # Purpose
//
// The walker is the first stage of every search. It enumerates a root
// directory, optionally recursing into subdirectories, applies a compiled
// pattern.Matcher to each regular file and captures a models.FileRecord
// (path, creation time, modification time, size) for every match.
//
// # Key Features
//
//   - Depth-first, pre-order traversal; a subdirectory's records appear at
//     the position the subdirectory was enumerated
//   - Shallow mode that only looks at the root's immediate entries
//   - Enumeration order is whatever the operating system yields; sorting
//     happens later in the pipeline
//   - Error isolation: an unreadable directory is reported as a *DirError
//     and contributes nothing, while its siblings are still searched
//   - Pluggable enumeration through the DirReader interface
//   - Optional debug line per directory searched
//
// # Main Components
//
// WalkOptions - configuration for a walk:
//   - Matcher: compiled pattern applied to the file name or full path
//   - Recursive: descend into subdirectories
//   - Reader: directory enumeration primitive (OSReader by default)
//   - Logger: receives debug and warning lines (optional)
//
// ScanResult - results of a walk:
//   - Records: matched files in traversal order
//   - Errors: one *DirError per directory that could not be read
//
// OSReader - DirReader backed by the local filesystem. Directory handles
// are closed on every return path. Symlinks to directories are never
// followed.
//
// # Usage Examples
//
// Recursive search for Go files:
//
//	m, err := pattern.Compile("*.go", pattern.Wildcard, pattern.FileName)
//	if err != nil {
//	    return err
//	}
//	result := fileutil.Walk("/path/to/repo", fileutil.WalkOptions{
//	    Matcher:   m,
//	    Recursive: true,
//	})
//	for _, rec := range result.Records {
//	    fmt.Println(rec.Path)
//	}
//	for _, err := range result.Errors {
//	    fmt.Fprintln(os.Stderr, err)
//	}
package fileutil
