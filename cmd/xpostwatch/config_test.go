package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tinytelemetry/xpostwatch/internal/model"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if got := cfg.timings(); got != model.DefaultTimings() {
		t.Fatalf("timings = %+v, want defaults", got)
	}
	if cfg.Subject != model.DefaultSubject {
		t.Fatalf("subject = %q", cfg.Subject)
	}
	if cfg.Skin != model.DefaultSkin {
		t.Fatalf("skin = %q", cfg.Skin)
	}
	if len(cfg.TickerMessages) != len(model.DefaultTickerMessages) {
		t.Fatalf("ticker messages = %v", cfg.TickerMessages)
	}
	if cfg.rand() != nil {
		t.Fatal("seed 0 should leave seeding to the session")
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yml := `subject: ada lovelace
skin: amber
clock-24h: true
seed: 42
initial-delay: 500ms
glitch-min: 1s
glitch-max: 2s
count-min: 10
count-max: 20
ticker-messages:
  - ONE
  - TWO
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Subject != "ada lovelace" || cfg.Skin != "amber" || !cfg.Clock24h {
		t.Fatalf("scalar overrides not applied: %+v", cfg)
	}
	tm := cfg.timings()
	if tm.InitialDelay != 500*time.Millisecond || tm.GlitchMin != time.Second || tm.GlitchMax != 2*time.Second {
		t.Fatalf("duration overrides not applied: %+v", tm)
	}
	if tm.CountMin != 10 || tm.CountMax != 20 {
		t.Fatalf("count overrides not applied: %+v", tm)
	}
	if len(cfg.TickerMessages) != 2 || cfg.TickerMessages[1] != "TWO" {
		t.Fatalf("ticker messages = %v", cfg.TickerMessages)
	}
	if cfg.ConfigDir != dir {
		t.Fatalf("config dir = %q, want %q", cfg.ConfigDir, dir)
	}
	if cfg.rand() == nil {
		t.Fatal("non-zero seed should produce a source")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("XPOSTWATCH_SUBJECT", "NIKOLA TESLA")
	t.Setenv("XPOSTWATCH_INCREMENT_INTERVAL", "3s")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Subject != "NIKOLA TESLA" {
		t.Fatalf("subject = %q", cfg.Subject)
	}
	if cfg.IncrementInterval != 3*time.Second {
		t.Fatalf("increment interval = %s", cfg.IncrementInterval)
	}
}

func TestLoadConfig_RejectsInvalidTimings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("glitch-min: 9s\nglitch-max: 2s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if !errors.Is(err, model.ErrInvalidTimings) {
		t.Fatalf("err = %v, want ErrInvalidTimings", err)
	}
}

func TestNewLogger_Off(t *testing.T) {
	logger, err := newLogger("info", "off")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("discarded")
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "xpostwatch.log")
	logger, err := newLogger("debug", path)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := newLogger("loud", filepath.Join(t.TempDir(), "x.log")); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
