package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GeminiConfig struct {
	APIKey string `validate:"required"`
	Model  string `validate:"required"`
}

type MapConfig struct {
	DefaultLat  float64 `validate:"latitude"`
	DefaultLng  float64 `validate:"longitude"`
	DefaultZoom int     `validate:"min=1,max=19"`
	TileURL     string  `validate:"required"`
}

type SessionConfig struct {
	Secret string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
	Secure bool
	// GeneratedSecret is set when SESSION_SECRET was missing and a random one
	// was used; sessions will not survive a restart.
	GeneratedSecret bool
}

type ObservabilityConfig struct {
	ServiceName  string `validate:"required"`
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
	LogLevel     string
}

type Config struct {
	ServerPort    string `validate:"required,numeric"`
	City          string `validate:"required"`
	Gemini        GeminiConfig
	Map           MapConfig
	Session       SessionConfig
	Observability ObservabilityConfig
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		City:       getEnvOrDefault("GUIDE_CITY", "Bangalore"),
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Map: MapConfig{
			TileURL: getEnvOrDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"),
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "namma-guide"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", "localhost:6060"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	var err error
	if cfg.Map.DefaultLat, err = getFloatOrDefault("MAP_DEFAULT_LAT", 12.9716); err != nil {
		return nil, err
	}
	if cfg.Map.DefaultLng, err = getFloatOrDefault("MAP_DEFAULT_LNG", 77.5946); err != nil {
		return nil, err
	}
	if cfg.Map.DefaultZoom, err = getIntOrDefault("MAP_DEFAULT_ZOOM", 13); err != nil {
		return nil, err
	}
	if cfg.Session.TTL, err = getDurationOrDefault("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Session.Secure, err = getBoolOrDefault("SESSION_SECURE", false); err != nil {
		return nil, err
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
		cfg.Session.GeneratedSecret = true
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getIntOrDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getBoolOrDefault(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
