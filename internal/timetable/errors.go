package timetable

import "errors"

var (
	ErrInvalidDateFormat       = errors.New("start day identifier must be YYYYMMDD")
	ErrUnknownTimezone         = errors.New("unknown timezone identifier")
	ErrRequestedRangeTooLarge  = errors.New("reservation is not possible that far ahead")
	ErrInvalidServiceDuration  = errors.New("service duration must be between 1 second and 1 day")
	ErrInvalidTimeslotInterval = errors.New("timeslot interval must be between 1 second and 1 day")
	ErrInvalidDays             = errors.New("days must be positive")
)
