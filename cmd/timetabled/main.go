package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"timetable-backend/config"
	"timetable-backend/internal/api"
	"timetable-backend/internal/app"
	"timetable-backend/internal/db"
	"timetable-backend/internal/store"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log.Env)
	defer logger.Sync()
	logger.Info("configuration loaded", zap.String("path", configPath))

	source, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open reference data source", zap.String("kind", cfg.Source.Kind), zap.Error(err))
	}

	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.Source.LoadTimeout)
	catalog, err := store.LoadCatalog(loadCtx, source)
	loadCancel()
	if err != nil {
		logger.Fatal("failed to load reference data", zap.Error(err))
	}
	logger.Info("reference data loaded",
		zap.Int("reservations", catalog.ReservationCount()),
		zap.Int("workhours", len(catalog.WorkHours())),
	)

	router := api.NewRouter(catalog, cfg.Server, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutdown signal received, stopping server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server Shutdown", zap.Error(err))
		return
	}

	logger.Info("server gracefully stopped")
}

func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	if cfg.Source.Kind != config.SourceDatabase {
		return store.NewFileStore(cfg.Source.EventsPath, cfg.Source.WorkhoursPath), nil
	}

	gormDB, err := db.Init(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("database initialized", zap.String("driver", cfg.Database.Driver))
	return store.NewGormStore(gormDB), nil
}
