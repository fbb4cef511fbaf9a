package timetable

const (
	// DefaultDays is used when a request does not say how many days to return.
	DefaultDays = 1
	// MaxDays is the furthest ahead a request may look.
	MaxDays = 90
	// DefaultTimeslotInterval is the step between candidate slot starts, in seconds.
	DefaultTimeslotInterval int64 = 1800
)

// Options are the optional request fields. Zero values select the defaults.
type Options struct {
	Days             int
	TimeslotInterval int64
	IgnoreSchedule   bool
	IgnoreWorkhour   bool
}

func (o Options) withDefaults() Options {
	if o.Days == 0 {
		o.Days = DefaultDays
	}
	if o.TimeslotInterval == 0 {
		o.TimeslotInterval = DefaultTimeslotInterval
	}
	return o
}

func (o Options) validate() error {
	switch {
	case o.Days > MaxDays:
		return ErrRequestedRangeTooLarge
	case o.Days < 0:
		return ErrInvalidDays
	case o.TimeslotInterval < 0, o.TimeslotInterval > secondsPerDay:
		return ErrInvalidTimeslotInterval
	}
	return nil
}

// Request is one availability query.
type Request struct {
	StartDayIdentifier string
	TimezoneIdentifier string
	ServiceDuration    int64
	Options
}

// Compute returns the timetables for the days following the requested start day.
// Every error is reported before any day is computed.
func Compute(req Request, ref Reference) ([]DayTimetable, error) {
	opts := req.Options.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if req.ServiceDuration <= 0 || req.ServiceDuration > secondsPerDay {
		return nil, ErrInvalidServiceDuration
	}

	anchor, err := ResolveDayAnchor(req.StartDayIdentifier, req.TimezoneIdentifier)
	if err != nil {
		return nil, err
	}

	reservations := ref.Reservations
	if opts.IgnoreSchedule {
		reservations = nil
	}
	workhours := ref.WorkHours
	if opts.IgnoreWorkhour {
		workhours = nil
	}

	days := EnumerateDays(anchor, opts.Days)
	timetables := make([]DayTimetable, 0, len(days))
	for _, day := range days {
		timetables = append(timetables, ScheduleDay(day, anchor.Location(), opts.TimeslotInterval, req.ServiceDuration, reservations, workhours))
	}
	return timetables, nil
}
