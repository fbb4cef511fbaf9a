package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"timetable-backend/internal/model"
)

// fileStore reads reference data from JSON files (events.json / workhours.json).
type fileStore struct {
	eventsPath    string
	workhoursPath string
}

// NewFileStore creates a store backed by JSON files. A missing file reads as an empty list.
func NewFileStore(eventsPath, workhoursPath string) Store {
	return &fileStore{eventsPath: eventsPath, workhoursPath: workhoursPath}
}

func (s *fileStore) Reservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := readJSON(ctx, s.eventsPath, &reservations); err != nil {
		return nil, fmt.Errorf("failed to read reservations: %w", err)
	}
	return reservations, nil
}

func (s *fileStore) WorkHours(ctx context.Context) ([]model.WorkHour, error) {
	var workhours []model.WorkHour
	if err := readJSON(ctx, s.workhoursPath, &workhours); err != nil {
		return nil, fmt.Errorf("failed to read work hours: %w", err)
	}
	return workhours, nil
}

func readJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
