package api

import (
	"go.uber.org/zap"

	"timetable-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	catalog *store.Catalog
	logger  *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(catalog *store.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}
