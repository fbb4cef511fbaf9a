package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Source   SourceConfig   `yaml:"source"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port                   int           `yaml:"port"`
	RequestIPHeader        string        `yaml:"request_ip_header"`
	RateLimitPerSec        float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst         int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds        int           `yaml:"cache_ttl_seconds"`
	CacheTTL               time.Duration `yaml:"-"`
	ShutdownTimeoutSeconds int           `yaml:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `yaml:"-"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Env string `yaml:"env"` // development or production
}

// Source kinds for reference data.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// SourceConfig tells where reservations and work hours are read from.
type SourceConfig struct {
	Kind               string        `yaml:"kind"`
	EventsPath         string        `yaml:"events_path"`
	WorkhoursPath      string        `yaml:"workhours_path"`
	LoadTimeoutSeconds int           `yaml:"load_timeout_seconds"`
	LoadTimeout        time.Duration `yaml:"-"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // postgres or sqlite
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	LogLevel               string `yaml:"log_level"` // silent, error, warn, info
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 5
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 300
	}
	c.Server.CacheTTL = time.Duration(c.Server.CacheTTLSeconds) * time.Second
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 5
	}
	c.Server.ShutdownTimeout = time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second

	if c.Log.Env == "" {
		c.Log.Env = "development"
	}

	if c.Source.Kind == "" {
		c.Source.Kind = SourceFile
	}
	if c.Source.EventsPath == "" {
		c.Source.EventsPath = "./data/events.json"
	}
	if c.Source.WorkhoursPath == "" {
		c.Source.WorkhoursPath = "./data/workhours.json"
	}
	if c.Source.LoadTimeoutSeconds <= 0 {
		c.Source.LoadTimeoutSeconds = 30
	}
	c.Source.LoadTimeout = time.Duration(c.Source.LoadTimeoutSeconds) * time.Second

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.LogLevel == "" {
		c.Database.LogLevel = "warn"
	}
}

func (c *Config) validate() error {
	switch c.Source.Kind {
	case SourceFile:
	case SourceDatabase:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when source.kind is %q", SourceDatabase)
		}
	default:
		return fmt.Errorf("unknown source.kind %q", c.Source.Kind)
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}
	return nil
}
