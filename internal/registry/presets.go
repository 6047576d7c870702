package registry

import "github.com/vovakirdan/tui-targets/internal/replay"

func init() {
	classic := replay.DefaultConfig()
	Register(Preset{
		ID:          "classic",
		Title:       "Classic",
		Description: "Five stationary targets, discrete movement",
		Config:      classic,
	})

	dwell := replay.DefaultConfig()
	dwell.DwellMode = true
	dwell.DwellTime = 1500
	dwell.TargetSize = replay.SizeLarge
	Register(Preset{
		ID:          "dwell",
		Title:       "Dwell",
		Description: "Hold on each target to collect it",
		Config:      dwell,
	})

	hazards := replay.DefaultConfig()
	hazards.Targets = replay.TargetCounts{Stationary: 4, Moving: 2, Bonus: 1, Hazard: 3}
	hazards.Boundaries = replay.BoundariesVisual
	Register(Preset{
		ID:          "hazards",
		Title:       "Hazards",
		Description: "Collect targets while steering around time penalties",
		Config:      hazards,
	})

	calm := replay.DefaultConfig()
	calm.Targets = replay.TargetCounts{Stationary: 2, Moving: 2, Flee: 1}
	calm.CalmMode = true
	calm.TargetSize = replay.SizeExtraLarge
	calm.PlayerSpeed = 2
	calm.PlayerTrail = replay.TrailLong
	calm.InputMethod = replay.InputContinuous
	Register(Preset{
		ID:          "calm",
		Title:       "Calm",
		Description: "Large, slow targets with half-speed motion",
		Config:      calm,
	})

	joystick := replay.DefaultConfig()
	joystick.Targets = replay.TargetCounts{Stationary: 3, Moving: 2}
	joystick.InputMethod = replay.InputJoystick
	joystick.JoystickSensitivity = replay.SensitivityLow
	joystick.JoystickDeadzone = 25
	Register(Preset{
		ID:          "joystick",
		Title:       "Joystick",
		Description: "Analog stick with a wide deadzone",
		Config:      joystick,
	})
}
