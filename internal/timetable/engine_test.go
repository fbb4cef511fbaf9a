package timetable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hour int64 = 3600

// 2024-01-02 00:00 UTC, the first day returned for a 20240101 request.
const jan2 int64 = 1704153600

func weekdayHours(open, close int64) []WorkHours {
	rules := make([]WorkHours, 0, 7)
	for w := Sunday; w <= Saturday; w++ {
		rules = append(rules, WorkHours{Weekday: w, OpenInterval: open, CloseInterval: close})
	}
	return rules
}

func TestCompute_Enumeration(t *testing.T) {
	result, err := Compute(Request{
		StartDayIdentifier: "20240101",
		TimezoneIdentifier: "UTC",
		ServiceDuration:    hour,
		Options:            Options{Days: 3},
	}, Reference{})
	require.NoError(t, err)
	require.Len(t, result, 3)

	for i, day := range result {
		assert.Equal(t, i+1, day.DayModifier)
		assert.Equal(t, jan2+int64(i)*86400, day.StartOfDay)
	}
}

func TestCompute_Defaults(t *testing.T) {
	result, err := Compute(Request{
		StartDayIdentifier: "20240101",
		TimezoneIdentifier: "UTC",
		ServiceDuration:    hour,
	}, Reference{WorkHours: weekdayHours(9*hour, 11*hour)})
	require.NoError(t, err)
	require.Len(t, result, DefaultDays)

	// 09:00, 09:30 and 10:00 with the default 30 minute step.
	require.Len(t, result[0].Timeslots, 3)
	assert.Equal(t, DefaultTimeslotInterval, result[0].Timeslots[1].BeginAt-result[0].Timeslots[0].BeginAt)
}

func TestCompute_Validation(t *testing.T) {
	valid := Request{StartDayIdentifier: "20240101", TimezoneIdentifier: "UTC", ServiceDuration: hour}

	testCases := []struct {
		name      string
		mutate    func(r *Request)
		expectErr error
	}{
		{name: "91 days", mutate: func(r *Request) { r.Days = 91 }, expectErr: ErrRequestedRangeTooLarge},
		{name: "Range checked before the date", mutate: func(r *Request) { r.Days = 120; r.StartDayIdentifier = "bogus" }, expectErr: ErrRequestedRangeTooLarge},
		{name: "Negative days", mutate: func(r *Request) { r.Days = -1 }, expectErr: ErrInvalidDays},
		{name: "Negative interval", mutate: func(r *Request) { r.TimeslotInterval = -1800 }, expectErr: ErrInvalidTimeslotInterval},
		{name: "Zero duration", mutate: func(r *Request) { r.ServiceDuration = 0 }, expectErr: ErrInvalidServiceDuration},
		{name: "Negative duration", mutate: func(r *Request) { r.ServiceDuration = -60 }, expectErr: ErrInvalidServiceDuration},
		{name: "Interval longer than a day", mutate: func(r *Request) { r.TimeslotInterval = 86401 }, expectErr: ErrInvalidTimeslotInterval},
		{name: "Max interval", mutate: func(r *Request) { r.TimeslotInterval = math.MaxInt64 }, expectErr: ErrInvalidTimeslotInterval},
		{name: "Duration longer than a day", mutate: func(r *Request) { r.ServiceDuration = 86401 }, expectErr: ErrInvalidServiceDuration},
		{name: "Max duration", mutate: func(r *Request) { r.ServiceDuration = math.MaxInt64 }, expectErr: ErrInvalidServiceDuration},
		{name: "Bad date", mutate: func(r *Request) { r.StartDayIdentifier = "2024/01/01" }, expectErr: ErrInvalidDateFormat},
		{name: "Bad timezone", mutate: func(r *Request) { r.TimezoneIdentifier = "Nowhere/Town" }, expectErr: ErrUnknownTimezone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			result, err := Compute(req, Reference{})
			assert.ErrorIs(t, err, tc.expectErr)
			assert.Nil(t, result)
		})
	}

	t.Run("Full day duration and interval are allowed", func(t *testing.T) {
		req := valid
		req.IgnoreWorkhour = true
		req.ServiceDuration = 86400
		req.TimeslotInterval = 86400
		result, err := Compute(req, Reference{})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Len(t, result[0].Timeslots, 1)
	})

	t.Run("90 days is allowed", func(t *testing.T) {
		req := valid
		req.Days = MaxDays
		result, err := Compute(req, Reference{})
		require.NoError(t, err)
		assert.Len(t, result, MaxDays)
	})
}

func TestCompute_IgnoreSchedule(t *testing.T) {
	ref := Reference{
		Reservations: []Reservation{{BeginAt: jan2 + 9*hour, EndAt: jan2 + 12*hour}},
		WorkHours:    weekdayHours(9*hour, 12*hour),
	}
	req := Request{StartDayIdentifier: "20240101", TimezoneIdentifier: "UTC", ServiceDuration: hour}

	booked, err := Compute(req, ref)
	require.NoError(t, err)
	assert.False(t, booked[0].IsDayOff)
	assert.Empty(t, booked[0].Timeslots)

	req.IgnoreSchedule = true
	free, err := Compute(req, ref)
	require.NoError(t, err)
	assert.Equal(t, []Timeslot{
		{BeginAt: jan2 + 9*hour, EndAt: jan2 + 10*hour},
		{BeginAt: jan2 + 9*hour + 1800, EndAt: jan2 + 10*hour + 1800},
		{BeginAt: jan2 + 10*hour, EndAt: jan2 + 11*hour},
		{BeginAt: jan2 + 10*hour + 1800, EndAt: jan2 + 11*hour + 1800},
		{BeginAt: jan2 + 11*hour, EndAt: jan2 + 12*hour},
	}, free[0].Timeslots)
}

func TestCompute_IgnoreWorkhour(t *testing.T) {
	closed := make([]WorkHours, 0, 7)
	for w := Sunday; w <= Saturday; w++ {
		closed = append(closed, WorkHours{Weekday: w, IsDayOff: true})
	}
	ref := Reference{
		Reservations: []Reservation{{BeginAt: jan2 + 12*hour, EndAt: jan2 + 13*hour}},
		WorkHours:    closed,
	}
	req := Request{
		StartDayIdentifier: "20240101",
		TimezoneIdentifier: "UTC",
		ServiceDuration:    hour,
		Options:            Options{Days: 2, TimeslotInterval: 1800},
	}

	result, err := Compute(req, ref)
	require.NoError(t, err)
	for _, day := range result {
		assert.True(t, day.IsDayOff)
		assert.Empty(t, day.Timeslots)
	}

	req.IgnoreWorkhour = true
	result, err = Compute(req, ref)
	require.NoError(t, err)
	require.Len(t, result, 2)

	for _, day := range result {
		assert.False(t, day.IsDayOff)
		for _, s := range day.Timeslots {
			assert.GreaterOrEqual(t, s.BeginAt, day.StartOfDay)
			assert.LessOrEqual(t, s.EndAt, day.StartOfDay+86400)
		}
	}
	// 11:30, 12:00 and 12:30 collide with the 12:00-13:00 reservation on the first day.
	assert.Len(t, result[0].Timeslots, 47-3)
	assert.Len(t, result[1].Timeslots, 47)
	assert.Equal(t, jan2, result[0].Timeslots[0].BeginAt)
}

func TestCompute_DayOffEmptiness(t *testing.T) {
	rules := weekdayHours(9*hour, 18*hour)
	rules[Wednesday-1].IsDayOff = true

	result, err := Compute(Request{
		StartDayIdentifier: "20240101",
		TimezoneIdentifier: "UTC",
		ServiceDuration:    hour,
		Options:            Options{Days: 7},
	}, Reference{WorkHours: rules})
	require.NoError(t, err)

	for _, day := range result {
		if day.IsDayOff {
			assert.Empty(t, day.Timeslots)
			assert.Equal(t, jan2+86400, day.StartOfDay) // 2024-01-03
		} else {
			assert.NotEmpty(t, day.Timeslots)
		}
	}
}
