package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"timetable-backend/internal/model"
)

// Store supplies the reference data the availability engine reads.
// Implementations never modify reservations or work hours.
type Store interface {
	Reservations(ctx context.Context) ([]model.Reservation, error)
	WorkHours(ctx context.Context) ([]model.WorkHour, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Reservations returns every reservation ordered by start time.
func (s *gormStore) Reservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).Order("begin_at").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return reservations, nil
}

// WorkHours returns the configured work-hour rules ordered by weekday.
func (s *gormStore) WorkHours(ctx context.Context) ([]model.WorkHour, error) {
	var workhours []model.WorkHour
	if err := s.db.WithContext(ctx).Order("weekday").Find(&workhours).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch work hours: %w", err)
	}
	return workhours, nil
}
