package timetable

import (
	"fmt"
	"time"
)

const dayIdentifierLayout = "20060102"

// ResolveDayAnchor interprets a YYYYMMDD identifier as local midnight in the named IANA timezone.
// The returned time carries that location; its Unix() value is the anchor in epoch seconds.
func ResolveDayAnchor(date, timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	if len(date) != len(dayIdentifierLayout) || !allDigits(date) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}
	anchor, err := time.ParseInLocation(dayIdentifierLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}
	return anchor, nil
}

// LoadLocation resolves an IANA timezone name. Unlike time.LoadLocation it refuses the empty
// string and "Local", which are not zone names.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
