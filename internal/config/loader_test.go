package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-targets/internal/replay"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var fromYAML TrainerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultTrainerConfig() {
		t.Errorf("embedded defaults drifted from DefaultTrainerConfig():\n yaml %+v\n code %+v",
			fromYAML, DefaultTrainerConfig())
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trainer.yaml")
	data := "sizes:\n  medium: 36\nsession:\n  history_limit: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Sizes.Medium != 36 {
		t.Errorf("Sizes.Medium = %v, expected 36", cfg.Sizes.Medium)
	}
	if cfg.Session.HistoryLimit != 5 {
		t.Errorf("HistoryLimit = %d, expected 5", cfg.Session.HistoryLimit)
	}
	// Unset keys keep their defaults
	if cfg.Placement.MaxAttempts != 50 {
		t.Errorf("MaxAttempts = %d, expected default 50", cfg.Placement.MaxAttempts)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trainer.toml")
	data := "[targets]\nbonus_seconds = 3.0\nhazard_seconds = 7.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Targets.BonusSeconds != 3 || cfg.Targets.HazardSeconds != 7 {
		t.Errorf("unexpected targets config: %+v", cfg.Targets)
	}
	if cfg.Sizes.Medium != 30 {
		t.Errorf("Sizes.Medium = %v, expected default 30", cfg.Sizes.Medium)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trainer.yaml")
	if err := os.WriteFile(path, []byte("session:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject tick_rate 0")
	}
	if !strings.Contains(err.Error(), "tick_rate") {
		t.Errorf("error should mention tick_rate, got %v", err)
	}
}

func TestSizeFor(t *testing.T) {
	cfg := DefaultTrainerConfig()
	tests := []struct {
		size     replay.Size
		expected float64
	}{
		{replay.SizeSmall, 20},
		{replay.SizeMedium, 30},
		{replay.SizeLarge, 40},
		{replay.SizeExtraLarge, 50},
	}
	for _, tc := range tests {
		if got := cfg.SizeFor(tc.size); got != tc.expected {
			t.Errorf("SizeFor(%q) = %v, expected %v", tc.size, got, tc.expected)
		}
	}
}

func TestTrailLength(t *testing.T) {
	cfg := DefaultTrainerConfig()
	if cfg.TrailLength(replay.TrailShort) != 8 {
		t.Error("short trail should be 8")
	}
	if cfg.TrailLength(replay.TrailLong) != 20 {
		t.Error("long trail should be 20")
	}
	if cfg.TrailLength(replay.TrailOff) != 0 {
		t.Error("trail off should be 0")
	}
}
