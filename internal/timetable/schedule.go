package timetable

import "time"

// ScheduleDay builds the timetable for one day.
//
// A nil workhours slice means work hours are ignored: the day is open around the clock and is
// never a day off. Otherwise the rule for the day's weekday applies; a weekday without a rule
// falls back to the same always-open hours.
func ScheduleDay(day Day, loc *time.Location, interval, duration int64, reservations []Reservation, workhours []WorkHours) DayTimetable {
	rule := alwaysOpen
	isDayOff := false

	if workhours != nil {
		weekday := WeekdayOf(time.Unix(day.StartOfDay, 0).In(loc).Weekday())
		if r, ok := ruleFor(weekday, workhours); ok {
			rule = r
		}
		isDayOff = rule.IsDayOff || rule.CloseInterval <= rule.OpenInterval
	}

	timeslots := make([]Timeslot, 0)
	if !isDayOff {
		timeslots = GenerateSlots(day.StartOfDay, interval, duration, rule.OpenInterval, rule.CloseInterval, reservations)
	}

	return DayTimetable{
		StartOfDay:  day.StartOfDay,
		DayModifier: day.DayModifier,
		IsDayOff:    isDayOff,
		Timeslots:   timeslots,
	}
}

// ruleFor returns the first rule configured for weekday.
func ruleFor(weekday Weekday, workhours []WorkHours) (WorkHours, bool) {
	for _, wh := range workhours {
		if wh.Weekday == weekday {
			return wh, true
		}
	}
	return WorkHours{}, false
}
