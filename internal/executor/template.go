package executor

import (
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

// Placeholders recognised in a command template.
const (
	PlaceholderDir  = "%d" // directory containing the file
	PlaceholderName = "%n" // file name without directory
	PlaceholderFull = "%f" // full path
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segDir
	segName
	segFull
)

type segment struct {
	kind segmentKind
	text string
}

// Template is a parsed command template. The zero value expands to the
// empty string.
type Template struct {
	raw      string
	segments []segment
}

// ParseTemplate splits raw into literal text and placeholders. A '%' that
// does not start one of %d, %n or %f is kept as literal text.
func ParseTemplate(raw string) Template {
	t := Template{raw: raw}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{kind: segLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] == '%' && i+1 < len(raw) {
			kind := segLiteral
			switch raw[i+1] {
			case 'd':
				kind = segDir
			case 'n':
				kind = segName
			case 'f':
				kind = segFull
			}
			if kind != segLiteral {
				flush()
				t.segments = append(t.segments, segment{kind: kind})
				i++
				continue
			}
		}
		lit.WriteByte(raw[i])
	}
	flush()

	return t
}

// Raw returns the template text as given.
func (t Template) Raw() string {
	return t.raw
}

// IsEmpty reports whether the template has no content.
func (t Template) IsEmpty() bool {
	return strings.TrimSpace(t.raw) == ""
}

// Expand builds the command line for the file at path. Each placeholder is
// replaced by its quoted value in a single pass, so text coming from the
// path is never itself treated as a placeholder.
func (t Template) Expand(path string) string {
	dir, name := models.SplitPath(path)
	return t.expand(dir, name, path)
}

func (t Template) expand(dir, name, full string) string {
	var sb strings.Builder
	for _, seg := range t.segments {
		switch seg.kind {
		case segDir:
			sb.WriteString(Quote(dir))
		case segName:
			sb.WriteString(Quote(name))
		case segFull:
			sb.WriteString(Quote(full))
		default:
			sb.WriteString(seg.text)
		}
	}
	return sb.String()
}
