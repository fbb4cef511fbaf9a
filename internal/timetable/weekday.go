package timetable

import "time"

// Weekday numbers days the way work-hour rules are stored: Sunday is 1, Saturday is 7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf converts a time.Weekday into the rule numbering.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(d) + 1
}

// Valid reports whether w is within Sunday..Saturday.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "invalid"
	}
	return time.Weekday(w - 1).String()
}
