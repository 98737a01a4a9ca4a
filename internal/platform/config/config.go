package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// Event catalog source.
	EventsCSVPath string
	WatchCSV      bool

	// Trigger discovery tuning. Calibration knobs, not law:
	// zero values fall back to the engine defaults.
	MinScore        float64
	SimilarityFloor float64
	CategoryBonus   float64
	TopN            int

	// Worker scan cadence.
	ScanInterval     time.Duration
	ScanLookbackDays int
}

type fileConfig struct {
	ServiceName string `yaml:"service_name"`
	HTTPPort    string `yaml:"http_port"`
	PostgresDSN string `yaml:"postgres_dsn"`

	EventsCSVPath string `yaml:"events_csv_path"`
	WatchCSV      *bool  `yaml:"watch_csv"`

	MinScore        float64 `yaml:"min_score"`
	SimilarityFloor float64 `yaml:"similarity_floor"`
	CategoryBonus   float64 `yaml:"category_bonus"`
	TopN            int     `yaml:"top_n"`

	ScanInterval     time.Duration `yaml:"scan_interval"`
	ScanLookbackDays int           `yaml:"scan_lookback_days"`
}

// Load builds Config from an optional YAML file (CONFIG_PATH) with
// environment variables taking precedence over file values.
func Load() (Config, error) {
	cfg := Config{
		ServiceName:      "senkron",
		HTTPPort:         "8080",
		EventsCSVPath:    "data/historical_events.csv",
		WatchCSV:         true,
		MinScore:         0.3,
		ScanInterval:     15 * time.Minute,
		ScanLookbackDays: 60,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		applyFile(&cfg, fc)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.ServiceName != "" {
		cfg.ServiceName = fc.ServiceName
	}
	if fc.HTTPPort != "" {
		cfg.HTTPPort = fc.HTTPPort
	}
	if fc.PostgresDSN != "" {
		cfg.PostgresDSN = fc.PostgresDSN
	}
	if fc.EventsCSVPath != "" {
		cfg.EventsCSVPath = fc.EventsCSVPath
	}
	if fc.WatchCSV != nil {
		cfg.WatchCSV = *fc.WatchCSV
	}
	if fc.MinScore > 0 {
		cfg.MinScore = fc.MinScore
	}
	if fc.SimilarityFloor > 0 {
		cfg.SimilarityFloor = fc.SimilarityFloor
	}
	if fc.CategoryBonus > 0 {
		cfg.CategoryBonus = fc.CategoryBonus
	}
	if fc.TopN > 0 {
		cfg.TopN = fc.TopN
	}
	if fc.ScanInterval > 0 {
		cfg.ScanInterval = fc.ScanInterval
	}
	if fc.ScanLookbackDays > 0 {
		cfg.ScanLookbackDays = fc.ScanLookbackDays
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.HTTPPort = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("EVENTS_CSV_PATH"); v != "" {
		cfg.EventsCSVPath = v
	}
	cfg.WatchCSV = envBool("WATCH_EVENTS_CSV", cfg.WatchCSV)

	if v := envFloat("DISCOVERY_MIN_SCORE"); v > 0 {
		cfg.MinScore = v
	}
	if v := envFloat("DISCOVERY_SIMILARITY_FLOOR"); v > 0 {
		cfg.SimilarityFloor = v
	}
	if v := envFloat("DISCOVERY_CATEGORY_BONUS"); v > 0 {
		cfg.CategoryBonus = v
	}
	if v := envInt("DISCOVERY_TOP_N"); v > 0 {
		cfg.TopN = v
	}
	if v := envDuration("SCAN_INTERVAL"); v > 0 {
		cfg.ScanInterval = v
	}
	if v := envInt("SCAN_LOOKBACK_DAYS"); v > 0 {
		cfg.ScanLookbackDays = v
	}
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envFloat(name string) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func envInt(name string) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func envDuration(name string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return value
}
