// Package filter removes records that fall outside a requested creation or
// modification time window, and parses the date strings that define it.
package filter

import (
	"github.com/harrison/findfiles/internal/models"
)

// ByDate returns the records that fall inside window, preserving their
// order. The input slice is never modified.
func ByDate(records []models.FileRecord, window models.DateWindow) []models.FileRecord {
	kept := make([]models.FileRecord, 0, len(records))
	if window.IsZero() {
		return append(kept, records...)
	}

	for _, r := range records {
		if window.Contains(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
