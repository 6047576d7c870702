package config

import (
	_ "embed"
)

//go:embed defaults/trainer.yaml
var defaultTrainerYAML []byte

// DefaultTrainerConfig returns the default trainer configuration.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Field: FieldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Sizes: SizeConfig{
			Small:      20,
			Medium:     30,
			Large:      40,
			ExtraLarge: 50,
		},
		Player: PlayerConfig{
			SpeedStep:  2,
			TrailShort: 8,
			TrailLong:  20,
		},
		Placement: PlacementConfig{
			MaxAttempts:     50,
			PlayerMargin:    20,
			EdgeMargin:      10,
			PlayerClearance: 3,
			TargetSpacing:   2.5,
			Overlay: OverlayConfig{
				Width:  160,
				Height: 60,
				Margin: 20,
			},
		},
		Targets: TargetsConfig{
			BonusSeconds:     5,
			HazardSeconds:    5,
			MovingSpeed:      2,
			FleeSpeedMin:     1.5,
			FleeSpeedRange:   1.5,
			FleeRadiusFactor: 4,
			CalmFactor:       0.5,
		},
		Session: SessionConfig{
			TickRate:     60,
			HistoryLimit: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTrainerYAML
}
