package sorter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/harrison/findfiles/internal/models"
)

// Compare orders a and b by keys. Each key is evaluated in turn and the
// first non-equal comparison decides; a descending key inverts its result.
// When every key compares equal the paths decide in ascending order, so
// two records only compare equal when their paths are equal.
func Compare(a, b models.FileRecord, keys []models.SortKey) int {
	for _, k := range keys {
		c := compareField(a, b, k.Field)
		if k.Direction == models.Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return strings.Compare(a.Path, b.Path)
}

func compareField(a, b models.FileRecord, field models.SortField) int {
	switch field {
	case models.FieldPath:
		return strings.Compare(a.Path, b.Path)
	case models.FieldName:
		return strings.Compare(a.Name(), b.Name())
	case models.FieldSize:
		return cmp.Compare(a.Size, b.Size)
	case models.FieldCreated:
		return a.Created.Compare(b.Created)
	case models.FieldModified:
		return a.Modified.Compare(b.Modified)
	default:
		return 0
	}
}

// Sort returns a new slice holding records in the order defined by keys.
// The sort is stable and the input slice is left untouched. An empty key
// sequence sorts by path.
func Sort(records []models.FileRecord, keys []models.SortKey) []models.FileRecord {
	if len(keys) == 0 {
		keys = models.DefaultSortKeys()
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.FileRecord) int {
		return Compare(a, b, keys)
	})
	return sorted
}
