package timetable

// Day describes one calendar day under consideration.
type Day struct {
	StartOfDay  int64 `json:"start_of_day"` // Unix seconds
	DayModifier int   `json:"day_modifier"` // 1-based offset from the requested start day
}

// WorkHours holds the business hours for one weekday. Offsets are seconds from local midnight.
type WorkHours struct {
	Weekday       Weekday
	IsDayOff      bool
	OpenInterval  int64
	CloseInterval int64
}

// alwaysOpen is used when work hours are ignored or a weekday has no rule.
var alwaysOpen = WorkHours{OpenInterval: 0, CloseInterval: secondsPerDay}

// Reservation is an already booked interval in Unix seconds.
type Reservation struct {
	BeginAt int64
	EndAt   int64
}

// Timeslot is one bookable window.
type Timeslot struct {
	BeginAt int64 `json:"begin_at"`
	EndAt   int64 `json:"end_at"`
}

// DayTimetable is the result for a single day.
type DayTimetable struct {
	StartOfDay  int64      `json:"start_of_day"`
	DayModifier int        `json:"day_modifier"`
	IsDayOff    bool       `json:"is_day_off"`
	Timeslots   []Timeslot `json:"timeslots"`
}

// Reference is the read-only reference data the engine works against.
// A nil WorkHours means no work hours are configured and every day is open.
type Reference struct {
	Reservations []Reservation
	WorkHours    []WorkHours
}
