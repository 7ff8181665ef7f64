package models

// SortField identifies the record attribute a SortKey compares.
type SortField int

// Sort fields, selected in the compact key syntax by p, n, s, c and m.
const (
	FieldPath SortField = iota
	FieldName
	FieldSize
	FieldCreated
	FieldModified
)

// String returns the field name used in debug output.
func (f SortField) String() string {
	switch f {
	case FieldPath:
		return "path"
	case FieldName:
		return "name"
	case FieldSize:
		return "size"
	case FieldCreated:
		return "created"
	case FieldModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Direction is the ordering direction of a SortKey.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortKey is one step of a multi-key ordering.
type SortKey struct {
	Field     SortField
	Direction Direction
}

// DefaultSortKeys is the ordering used when no valid key is requested.
func DefaultSortKeys() []SortKey {
	return []SortKey{{Field: FieldPath, Direction: Ascending}}
}
