package filter

import (
	"fmt"
	"regexp"
	"time"

	"github.com/harrison/findfiles/internal/models"
)

// dateFormat pairs the literal shape of an accepted date string with the
// time layout that parses it.
type dateFormat struct {
	shape  *regexp.Regexp
	layout string
}

var dateFormats = []dateFormat{
	{regexp.MustCompile(`^\d{8}$`), "20060102"},
	{regexp.MustCompile(`^\d{12}$`), "200601021504"},
	{regexp.MustCompile(`^\d{14}$`), "20060102150405"},
	{regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`), "2006/01/02"},
	{regexp.MustCompile(`^\d{4}/\d{2}/\d{2}-\d{2}:\d{2}$`), "2006/01/02-15:04"},
	{regexp.MustCompile(`^\d{4}/\d{2}/\d{2}-\d{2}:\d{2}:\d{2}$`), "2006/01/02-15:04:05"},
}

// AcceptedFormats lists the date shapes ParseDate understands, for help
// text and error messages.
const AcceptedFormats = "YYYYMMDD, YYYYMMDDHHMM, YYYYMMDDHHMMSS, YYYY/MM/DD, YYYY/MM/DD-HH:MM, YYYY/MM/DD-HH:MM:SS"

// DateError reports a date string that could not be parsed.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid date %q: expected one of %s", e.Value, AcceptedFormats)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// ParseDate parses s as a UTC instant. Only the fixed formats listed in
// AcceptedFormats are recognised.
func ParseDate(s string) (time.Time, error) {
	for _, f := range dateFormats {
		if !f.shape.MatchString(s) {
			continue
		}
		t, err := time.ParseInLocation(f.layout, s, time.UTC)
		if err != nil {
			return time.Time{}, &DateError{Value: s, Err: err}
		}
		return t, nil
	}
	return time.Time{}, &DateError{Value: s}
}

// ParseWindow builds a DateWindow from four optional date strings. Empty
// strings leave the corresponding bound unset. Bounds are not checked
// against each other; an inverted window simply matches nothing.
func ParseWindow(createdFrom, createdTo, modifiedFrom, modifiedTo string) (models.DateWindow, error) {
	var w models.DateWindow
	var err error

	if w.CreatedFrom, err = parseBound("created-from", createdFrom); err != nil {
		return models.DateWindow{}, err
	}
	if w.CreatedTo, err = parseBound("created-to", createdTo); err != nil {
		return models.DateWindow{}, err
	}
	if w.ModifiedFrom, err = parseBound("modified-from", modifiedFrom); err != nil {
		return models.DateWindow{}, err
	}
	if w.ModifiedTo, err = parseBound("modified-to", modifiedTo); err != nil {
		return models.DateWindow{}, err
	}

	return w, nil
}

func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}
