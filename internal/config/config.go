package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgallion1/taskshift/internal/dates"
	"github.com/dgallion1/taskshift/internal/movelog"
)

type Config struct {
	// Hook behaviour
	LogFile        string
	NormalizeDates bool
	DateLabels     []string
	Stage          bool

	LogLevel slog.Level

	// HTTP API
	Port           string
	APIKey         string
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		LogFile:        envOr("TASKSHIFT_LOG_FILE", movelog.DefaultPath),
		NormalizeDates: envBool("TASKSHIFT_NORMALIZE_DATES", true),
		DateLabels:     envList("TASKSHIFT_DATE_LABELS", dates.DefaultLabels),
		Stage:          envBool("TASKSHIFT_STAGE", true),

		LogLevel: envLevel("TASKSHIFT_LOG_LEVEL", slog.LevelInfo),

		Port:           envOr("PORT", "8091"),
		APIKey:         os.Getenv("TASKSHIFT_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 1048576), // 1MB
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 1048576
	}
	if len(cfg.DateLabels) == 0 {
		cfg.DateLabels = dates.DefaultLabels
	}

	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.LogFile) == "" {
		return fmt.Errorf("TASKSHIFT_LOG_FILE must not be empty")
	}
	for _, l := range c.DateLabels {
		if strings.ContainsAny(l, "[]:") {
			return fmt.Errorf("date label %q must not contain brackets or colons", l)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			return lvl
		}
	}
	return fallback
}
