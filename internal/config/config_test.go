package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WorldSize != 100 {
		t.Errorf("expected world size 100, got %d", cfg.WorldSize)
	}
	if cfg.StartX != 50 || cfg.StartY != 50 || cfg.StartZ != 50 {
		t.Errorf("expected start (50,50,50), got (%d,%d,%d)", cfg.StartX, cfg.StartY, cfg.StartZ)
	}
	if cfg.ContextRadius != 1 {
		t.Errorf("expected context radius 1, got %d", cfg.ContextRadius)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("expected 1s retry delay, got %s", cfg.RetryDelay)
	}
	if cfg.Provider != "openai" {
		t.Errorf("expected openai provider, got %q", cfg.Provider)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NEONGRID_WORLD_SIZE", "10")
	t.Setenv("NEONGRID_START_X", "3")
	t.Setenv("NEONGRID_START_Y", "4")
	t.Setenv("NEONGRID_START_Z", "5")
	t.Setenv("NEONGRID_RETRY_DELAY", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WorldSize != 10 {
		t.Errorf("expected world size 10, got %d", cfg.WorldSize)
	}
	if cfg.Start().X != 3 || cfg.Start().Y != 4 || cfg.Start().Z != 5 {
		t.Errorf("unexpected start %+v", cfg.Start())
	}
	if cfg.RetryDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.RetryDelay)
	}
}

func TestLoadRejectsOutOfBoundsStart(t *testing.T) {
	t.Setenv("NEONGRID_WORLD_SIZE", "10")
	t.Setenv("NEONGRID_START_X", "10")

	if _, err := Load(); err == nil {
		t.Error("expected error for start on the wrong side of the boundary")
	}
}

func TestLoadRejectsZeroRetries(t *testing.T) {
	t.Setenv("NEONGRID_MAX_RETRIES", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for zero retries")
	}
}
