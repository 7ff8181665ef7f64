package models

import "time"

// DateWindow restricts records by creation and modification time.
// A nil bound imposes no constraint. From bounds are inclusive, To bounds
// are exclusive.
type DateWindow struct {
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	ModifiedFrom *time.Time
	ModifiedTo   *time.Time
}

// IsZero reports whether the window has no bounds at all.
func (w DateWindow) IsZero() bool {
	return w.CreatedFrom == nil && w.CreatedTo == nil &&
		w.ModifiedFrom == nil && w.ModifiedTo == nil
}

// Contains reports whether r falls inside every bound that is set.
func (w DateWindow) Contains(r FileRecord) bool {
	if w.CreatedFrom != nil && r.Created.Before(*w.CreatedFrom) {
		return false
	}
	if w.CreatedTo != nil && !r.Created.Before(*w.CreatedTo) {
		return false
	}
	if w.ModifiedFrom != nil && r.Modified.Before(*w.ModifiedFrom) {
		return false
	}
	if w.ModifiedTo != nil && !r.Modified.Before(*w.ModifiedTo) {
		return false
	}
	return true
}
