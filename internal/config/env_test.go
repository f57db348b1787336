package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"WAREHOUSE_WIDTH", "WAREHOUSE_HEIGHT", "WAREHOUSE_RENDER", "WAREHOUSE_FRAME_DELAY"} {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 10 {
		t.Fatalf("expected 10x10, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Render {
		t.Fatal("expected render off by default")
	}
	if cfg.FrameDelay != 200*time.Millisecond {
		t.Fatalf("expected 200ms delay, got %v", cfg.FrameDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAREHOUSE_WIDTH", "4")
	t.Setenv("WAREHOUSE_HEIGHT", "7")
	t.Setenv("WAREHOUSE_RENDER", "true")
	t.Setenv("WAREHOUSE_FRAME_DELAY", "1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Width: 4, Height: 7, Render: true, FrameDelay: time.Second}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadRejectsNegativeSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAREHOUSE_WIDTH", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseEnvError(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAREHOUSE_HEIGHT", "tall")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
