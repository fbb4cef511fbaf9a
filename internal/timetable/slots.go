package timetable

// GenerateSlots scans [dayStart+open, dayStart+close] in steps of interval and returns every
// start time whose slot of length duration does not collide with a reservation.
//
// A slot may begin exactly when a reservation ends and end exactly when one begins.
func GenerateSlots(dayStart, interval, duration, open, close int64, reservations []Reservation) []Timeslot {
	slots := make([]Timeslot, 0)
	if interval <= 0 || duration <= 0 {
		return slots
	}

	windowOpen := dayStart + open
	windowClose := dayStart + close
	relevant := reservationsWithin(windowOpen, windowClose, reservations)

	// Bounds are compared by subtraction so a huge duration or interval cannot wrap around.
	lastStart := windowClose - duration
	for t := windowOpen; t <= lastStart; t += interval {
		if !collides(t, t+duration, relevant) {
			slots = append(slots, Timeslot{BeginAt: t, EndAt: t + duration})
		}
		if lastStart-t < interval {
			break
		}
	}
	return slots
}

// reservationsWithin keeps reservations that begin or end inside the closed window.
func reservationsWithin(windowOpen, windowClose int64, reservations []Reservation) []Reservation {
	var out []Reservation
	for _, r := range reservations {
		beginInside := r.BeginAt >= windowOpen && r.BeginAt <= windowClose
		endInside := r.EndAt >= windowOpen && r.EndAt <= windowClose
		if beginInside || endInside {
			out = append(out, r)
		}
	}
	return out
}

// collides reports whether begin falls in [r.BeginAt, r.EndAt) or end falls in
// (r.BeginAt, r.EndAt] for any reservation.
func collides(begin, end int64, reservations []Reservation) bool {
	for _, r := range reservations {
		if begin >= r.BeginAt && begin < r.EndAt {
			return true
		}
		if end > r.BeginAt && end <= r.EndAt {
			return true
		}
	}
	return false
}
