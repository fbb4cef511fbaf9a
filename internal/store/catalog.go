package store

import (
	"context"

	"timetable-backend/internal/model"
	"timetable-backend/internal/timetable"
)

// Catalog is the reference data loaded once at startup. It is never modified afterwards,
// so concurrent requests can share it without locking.
type Catalog struct {
	workhours []model.WorkHour
	reference timetable.Reference
}

// LoadCatalog reads both reference collections from s.
func LoadCatalog(ctx context.Context, s Store) (*Catalog, error) {
	reservations, err := s.Reservations(ctx)
	if err != nil {
		return nil, err
	}
	workhours, err := s.WorkHours(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(reservations, workhours), nil
}

// NewCatalog builds a catalog from already loaded records. With no work-hour records every
// day is treated as open around the clock.
func NewCatalog(reservations []model.Reservation, workhours []model.WorkHour) *Catalog {
	ref := timetable.Reference{
		Reservations: make([]timetable.Reservation, 0, len(reservations)),
	}
	for _, r := range reservations {
		ref.Reservations = append(ref.Reservations, timetable.Reservation{BeginAt: r.BeginAt, EndAt: r.EndAt})
	}
	if len(workhours) > 0 {
		ref.WorkHours = make([]timetable.WorkHours, 0, len(workhours))
		for _, wh := range workhours {
			ref.WorkHours = append(ref.WorkHours, timetable.WorkHours{
				Weekday:       timetable.Weekday(wh.Weekday),
				IsDayOff:      wh.IsDayOff,
				OpenInterval:  wh.OpenInterval,
				CloseInterval: wh.CloseInterval,
			})
		}
	}

	return &Catalog{
		workhours: append([]model.WorkHour(nil), workhours...),
		reference: ref,
	}
}

// Reference returns the snapshot handed to the engine.
func (c *Catalog) Reference() timetable.Reference {
	return c.reference
}

// WorkHours returns a copy of the configured rules.
func (c *Catalog) WorkHours() []model.WorkHour {
	return append([]model.WorkHour{}, c.workhours...)
}

// ReservationCount returns how many reservations were loaded.
func (c *Catalog) ReservationCount() int {
	return len(c.reference.Reservations)
}
