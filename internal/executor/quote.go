package executor

import "strings"

// Quote wraps s in double quotes so that a POSIX shell word splitter reads
// it back as exactly one word equal to s.
//
// Inside double quotes only a few characters keep a special meaning. '"',
// '$' and '`' are always backslash escaped. A backslash is escaped only when
// it would otherwise pair with the character after it (another backslash, a
// quote, '$', '`' or a newline) or with the closing quote, so Windows style
// paths such as C:\dir\file.txt pass through unchanged.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)

	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '$', '`':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\\':
			if i+1 == len(s) || pairsWithBackslash(s[i+1]) {
				sb.WriteString(`\\`)
			} else {
				sb.WriteByte(c)
			}
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')

	return sb.String()
}

func pairsWithBackslash(c byte) bool {
	switch c {
	case '\\', '"', '$', '`', '\n':
		return true
	}
	return false
}
