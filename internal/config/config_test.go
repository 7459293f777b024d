package config

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/dgallion1/taskshift/internal/movelog"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TASKSHIFT_LOG_FILE", "TASKSHIFT_NORMALIZE_DATES", "TASKSHIFT_DATE_LABELS", "TASKSHIFT_STAGE", "TASKSHIFT_LOG_LEVEL", "PORT", "TASKSHIFT_API_KEY", "MAX_UPLOAD_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.LogFile != movelog.DefaultPath {
		t.Errorf("expected log file %q, got %q", movelog.DefaultPath, cfg.LogFile)
	}
	if !cfg.NormalizeDates || !cfg.Stage {
		t.Errorf("expected dates and staging enabled by default, got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.DateLabels, []string{"TBD"}) {
		t.Errorf("expected [TBD], got %v", cfg.DateLabels)
	}
	if cfg.Port != "8091" {
		t.Errorf("expected port %q, got %q", "8091", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TASKSHIFT_LOG_FILE", "tmp/moves.txt")
	t.Setenv("TASKSHIFT_NORMALIZE_DATES", "false")
	t.Setenv("TASKSHIFT_DATE_LABELS", "TBD, Due ,,")
	t.Setenv("TASKSHIFT_STAGE", "0")
	t.Setenv("TASKSHIFT_LOG_LEVEL", "debug")
	t.Setenv("MAX_UPLOAD_BYTES", "-5")

	cfg := Load()
	if cfg.LogFile != "tmp/moves.txt" {
		t.Errorf("expected %q, got %q", "tmp/moves.txt", cfg.LogFile)
	}
	if cfg.NormalizeDates || cfg.Stage {
		t.Errorf("expected dates and staging disabled, got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.DateLabels, []string{"TBD", "Due"}) {
		t.Errorf("expected [TBD Due], got %v", cfg.DateLabels)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("expected fallback upload limit, got %d", cfg.MaxUploadBytes)
	}
}

func TestValidate_RejectsBadLabel(t *testing.T) {
	cfg := Config{LogFile: "x", DateLabels: []string{"TB:D"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for label containing a colon")
	}
}
