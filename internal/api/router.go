package api

import (
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"timetable-backend/config"
	"timetable-backend/internal/mw"
	"timetable-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(catalog *store.Catalog, cfg config.ServerConfig, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog(logger))

	handler := NewHandler(catalog, logger)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, cfg.RequestIPHeader)

	// Reference data never changes while the process runs, so cached answers stay valid for the TTL.
	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	r.GET("/healthz", Healthz)
	r.POST("/getTimeSlots", rateLimiter, caching, handler.GetTimeSlots)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/timeslots", caching, handler.GetTimeSlots)
		api.GET("/workhours", caching, handler.GetWorkHours)
	}

	return r
}
