// Package sorter orders file records by a sequence of sort keys.
//
// Keys are usually written in a compact form: each of the characters
// p, n, s, c and m selects path, name, size, creation time or modification
// time, and a '-' directly before a field character sorts that field in
// descending order. "s-m" sorts by size ascending, then by modification
// time descending.
package sorter

import (
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

var fieldChars = map[rune]models.SortField{
	'p': models.FieldPath,
	'n': models.FieldName,
	's': models.FieldSize,
	'c': models.FieldCreated,
	'm': models.FieldModified,
}

// ParseKeys decodes a compact key string. Unrecognised characters are
// skipped, and a '-' only affects the field character that follows it.
// An empty or entirely invalid string yields the default [path ascending].
func ParseKeys(spec string) []models.SortKey {
	var keys []models.SortKey
	descending := false

	for _, c := range spec {
		if c == '-' {
			descending = true
			continue
		}

		field, ok := fieldChars[c]
		if !ok {
			descending = false
			continue
		}

		dir := models.Ascending
		if descending {
			dir = models.Descending
		}
		keys = append(keys, models.SortKey{Field: field, Direction: dir})
		descending = false
	}

	if len(keys) == 0 {
		return models.DefaultSortKeys()
	}
	return keys
}

// FormatKeys renders keys back into the compact form.
func FormatKeys(keys []models.SortKey) string {
	var b strings.Builder
	for _, k := range keys {
		if k.Direction == models.Descending {
			b.WriteByte('-')
		}
		for c, f := range fieldChars {
			if f == k.Field {
				b.WriteRune(c)
				break
			}
		}
	}
	return b.String()
}
