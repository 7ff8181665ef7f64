package executor

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is returned by SplitCommandLine when a quoted
// section is not closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// SplitCommandLine splits an expanded command line into program arguments.
//
// Unquoted blanks separate words. Text between double quotes is one word
// part, and inside it a backslash only escapes '\', '"', '$' and '`', which
// is exactly what Quote produces. Text between single quotes is taken as is.
// Everything else, backslashes included, is kept as written: there is no
// tilde, brace, glob or variable expansion.
func SplitCommandLine(line string) ([]string, error) {
	var (
		words  []string
		cur    strings.Builder
		inWord bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		case '"':
			inWord = true
			end, err := readDoubleQuoted(line, i+1, &cur)
			if err != nil {
				return nil, err
			}
			i = end
		case '\'':
			inWord = true
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, ErrUnterminatedQuote
			}
			cur.WriteString(line[i+1 : i+1+end])
			i += end + 1
		default:
			inWord = true
			cur.WriteByte(c)
		}
	}
	if inWord {
		words = append(words, cur.String())
	}

	return words, nil
}

// readDoubleQuoted copies the quoted text starting at line[start] into sb
// and returns the index of the closing quote.
func readDoubleQuoted(line string, start int, sb *strings.Builder) (int, error) {
	for i := start; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			return i, nil
		case c == '\\' && i+1 < len(line) && isQuotedEscape(line[i+1]):
			sb.WriteByte(line[i+1])
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return 0, ErrUnterminatedQuote
}

func isQuotedEscape(c byte) bool {
	switch c {
	case '\\', '"', '$', '`':
		return true
	}
	return false
}
