// Package pattern compiles user search patterns into case-insensitive
// matchers. Patterns are either DOS wildcards (* and ?) or regular
// expressions, and are tested against a file's base name or its full path.
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how the raw pattern is interpreted.
type Mode int

const (
	// Wildcard treats * as any run of characters and ? as any single character.
	Wildcard Mode = iota
	// Regex compiles the pattern as a regular expression.
	Regex
)

// String returns the mode name used in debug output.
func (m Mode) String() string {
	if m == Regex {
		return "regex"
	}
	return "wildcard"
}

// Target selects what the matcher is applied to.
type Target int

const (
	// FileName matches against the base file name.
	FileName Target = iota
	// FullPath matches against the full path of the file.
	FullPath
)

// String returns the target name used in debug output.
func (t Target) String() string {
	if t == FullPath {
		return "full-path"
	}
	return "filename"
}

// PatternError reports a pattern that could not be compiled.
type PatternError struct {
	Pattern string
	Mode    Mode
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Mode, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Matcher is a compiled, case-insensitive pattern.
type Matcher struct {
	raw    string
	mode   Mode
	target Target
	re     *regexp.Regexp
}

// Compile builds a Matcher from raw.
//
// Wildcard patterns matched against file names are anchored to the whole
// name. Wildcard patterns matched against full paths, and all regex
// patterns, search for a match anywhere in the subject.
func Compile(raw string, mode Mode, target Target) (*Matcher, error) {
	var expr string
	flags := "(?i)"
	switch mode {
	case Wildcard:
		// * and ? match any character, newline included
		flags = "(?is)"
		expr = wildcardToRegex(raw)
		if target == FileName {
			expr = "^(?:" + expr + ")$"
		}
	case Regex:
		expr = raw
	default:
		return nil, &PatternError{Pattern: raw, Mode: mode, Err: fmt.Errorf("unknown pattern mode %d", mode)}
	}

	re, err := regexp.Compile(flags + expr)
	if err != nil {
		return nil, &PatternError{Pattern: raw, Mode: mode, Err: err}
	}

	return &Matcher{raw: raw, mode: mode, target: target, re: re}, nil
}

// wildcardToRegex escapes every regex metacharacter in pattern, turning *
// into .* and ? into a single-character match.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// Match tests the matcher against name or fullPath, depending on the target
// the matcher was compiled for.
func (m *Matcher) Match(name, fullPath string) bool {
	if m.target == FullPath {
		return m.re.MatchString(fullPath)
	}
	return m.re.MatchString(name)
}

// Target returns what the matcher is applied to.
func (m *Matcher) Target() Target {
	return m.target
}

// Raw returns the pattern as the user supplied it.
func (m *Matcher) Raw() string {
	return m.raw
}

// String returns the compiled regular expression.
func (m *Matcher) String() string {
	return m.re.String()
}
