// Package config provides YAML-based engine tuning for the trainer: target
// sizes, placement constants, target behavior and session defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-targets/internal/replay"
)

// TrainerConfig contains every tunable the session engine reads.
// Changing placement or size values changes the layout a replay code
// produces, so shared codes assume the defaults.
type TrainerConfig struct {
	Field     FieldConfig     `yaml:"field" toml:"field"`
	Sizes     SizeConfig      `yaml:"sizes" toml:"sizes"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Placement PlacementConfig `yaml:"placement" toml:"placement"`
	Targets   TargetsConfig   `yaml:"targets" toml:"targets"`
	Session   SessionConfig   `yaml:"session" toml:"session"`
}

// FieldConfig maps terminal cells to field units.
type FieldConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`   // Field units per column
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"` // Field units per row
}

// SizeConfig holds the diameter of each target size in field units.
type SizeConfig struct {
	Small      float64 `yaml:"small" toml:"small"`
	Medium     float64 `yaml:"medium" toml:"medium"`
	Large      float64 `yaml:"large" toml:"large"`
	ExtraLarge float64 `yaml:"extra_large" toml:"extra_large"`
}

// PlayerConfig defines player movement and trail parameters.
type PlayerConfig struct {
	SpeedStep  float64 `yaml:"speed_step" toml:"speed_step"` // Units per tick per speed level
	TrailShort int     `yaml:"trail_short" toml:"trail_short"`
	TrailLong  int     `yaml:"trail_long" toml:"trail_long"`
}

// PlacementConfig defines the rejection sampling constraints.
type PlacementConfig struct {
	MaxAttempts     int           `yaml:"max_attempts" toml:"max_attempts"`
	PlayerMargin    float64       `yaml:"player_margin" toml:"player_margin"`       // Added to player size for the start margin
	EdgeMargin      float64       `yaml:"edge_margin" toml:"edge_margin"`           // Added to target size for the spawn margin
	PlayerClearance float64       `yaml:"player_clearance" toml:"player_clearance"` // Multiple of target size
	TargetSpacing   float64       `yaml:"target_spacing" toml:"target_spacing"`     // Multiple of target size
	Overlay         OverlayConfig `yaml:"overlay" toml:"overlay"`
}

// OverlayConfig is the top-left area reserved for the timer overlay.
type OverlayConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Margin float64 `yaml:"margin" toml:"margin"`
}

// TargetsConfig defines per-kind target behavior.
type TargetsConfig struct {
	BonusSeconds     float64 `yaml:"bonus_seconds" toml:"bonus_seconds"`
	HazardSeconds    float64 `yaml:"hazard_seconds" toml:"hazard_seconds"`
	MovingSpeed      float64 `yaml:"moving_speed" toml:"moving_speed"` // Max velocity component, units per tick
	FleeSpeedMin     float64 `yaml:"flee_speed_min" toml:"flee_speed_min"`
	FleeSpeedRange   float64 `yaml:"flee_speed_range" toml:"flee_speed_range"`
	FleeRadiusFactor float64 `yaml:"flee_radius_factor" toml:"flee_radius_factor"`
	CalmFactor       float64 `yaml:"calm_factor" toml:"calm_factor"` // Motion multiplier in calm mode
}

// SessionConfig defines session loop and history parameters.
type SessionConfig struct {
	TickRate     int `yaml:"tick_rate" toml:"tick_rate"`
	HistoryLimit int `yaml:"history_limit" toml:"history_limit"`
}

// SizeFor returns the diameter configured for a replay size.
func (c TrainerConfig) SizeFor(s replay.Size) float64 {
	switch s {
	case replay.SizeSmall:
		return c.Sizes.Small
	case replay.SizeLarge:
		return c.Sizes.Large
	case replay.SizeExtraLarge:
		return c.Sizes.ExtraLarge
	default:
		return c.Sizes.Medium
	}
}

// TrailLength returns the trail cap for a replay trail setting.
func (c TrainerConfig) TrailLength(t replay.Trail) int {
	switch t {
	case replay.TrailLong:
		return c.Player.TrailLong
	case replay.TrailOff:
		return 0
	default:
		return c.Player.TrailShort
	}
}

// Validate reports values the engine cannot run with.
func (c TrainerConfig) Validate() error {
	var errs []error
	if c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0 {
		errs = append(errs, errors.New("field cell size must be positive"))
	}
	if c.Sizes.Small <= 0 || c.Sizes.Medium <= 0 || c.Sizes.Large <= 0 || c.Sizes.ExtraLarge <= 0 {
		errs = append(errs, errors.New("target sizes must be positive"))
	}
	if c.Placement.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("placement max_attempts must be at least 1, got %d", c.Placement.MaxAttempts))
	}
	if c.Session.TickRate < 1 {
		errs = append(errs, fmt.Errorf("session tick_rate must be at least 1, got %d", c.Session.TickRate))
	}
	if c.Session.HistoryLimit < 1 {
		errs = append(errs, fmt.Errorf("session history_limit must be at least 1, got %d", c.Session.HistoryLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
