package timetable

import "time"

const secondsPerDay int64 = 86400

// EnumerateDays returns the count days following anchor, with modifiers 1..count.
// The anchor day itself is not part of the result.
//
// Each StartOfDay is local midnight in the anchor's location, so a day that spans a DST
// change still starts on its own midnight. Away from transitions this equals
// anchor + 86400*offset.
func EnumerateDays(anchor time.Time, count int) []Day {
	if count <= 0 {
		return nil
	}

	y, m, d := anchor.Date()
	loc := anchor.Location()

	days := make([]Day, 0, count)
	for i := 1; i <= count; i++ {
		start := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		days = append(days, Day{
			StartOfDay:  start.Unix(),
			DayModifier: i,
		})
	}
	return days
}
