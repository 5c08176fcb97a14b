package config

import (
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port int `envconfig:"PORT" default:"8080"`
	// DatabaseURL is optional; without it the project snapshot routes are disabled.
	DatabaseURL      string `envconfig:"DATABASE_URL" default:""`
	MaxDocumentBytes int64  `envconfig:"MAX_DOCUMENT_BYTES" default:"10485760"`
	IngestStrict     bool   `envconfig:"INGEST_STRICT" default:"false"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins   string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	// BitmapDir enables bitmap upload and serving when set.
	BitmapDir string `envconfig:"BITMAP_DIR" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level maps LogLevel to a slog level. Unrecognized values mean info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
