// Package replay converts session configurations to and from replay codes:
// short decimal strings that reproduce a session exactly when shared.
package replay

// Size is the configured target size.
type Size string

const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra-large"
)

// Trail is the length of the player's motion trail.
type Trail string

const (
	TrailShort Trail = "short"
	TrailLong  Trail = "long"
	TrailOff   Trail = "off" // v2 only
)

// InputMethod selects how the player marker is driven.
type InputMethod string

const (
	InputDiscrete   InputMethod = "discrete"
	InputContinuous InputMethod = "continuous"
	InputMouse      InputMethod = "mouse"
	InputJoystick   InputMethod = "joystick" // v2 only
	InputCursor     InputMethod = "cursor"   // v2 only
)

// Boundaries controls what happens at the field edge.
type Boundaries string

const (
	BoundariesNone   Boundaries = "none"
	BoundariesVisual Boundaries = "visual"
	BoundariesHard   Boundaries = "hard"
)

// Sensitivity is the joystick response curve.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// TargetCounts holds how many targets of each kind a session spawns.
// The wire format stores each count as a single digit.
type TargetCounts struct {
	Stationary int `json:"stationary" yaml:"stationary"`
	Moving     int `json:"moving" yaml:"moving"`
	Flee       int `json:"flee" yaml:"flee"`
	Bonus      int `json:"bonus" yaml:"bonus"`
	Hazard     int `json:"hazard" yaml:"hazard"`
}

// Total returns the number of requested targets of all kinds.
func (c TargetCounts) Total() int {
	return c.Stationary + c.Moving + c.Flee + c.Bonus + c.Hazard
}

// Core returns the number of requested targets that count toward completion.
func (c TargetCounts) Core() int {
	return c.Stationary + c.Moving + c.Flee
}

// Feedback toggles the feedback channels.
type Feedback struct {
	Audio  bool `json:"audio" yaml:"audio"`
	Visual bool `json:"visual" yaml:"visual"`
	Haptic bool `json:"haptic" yaml:"haptic"`
}

// Config is everything a replay code carries.
type Config struct {
	Targets     TargetCounts `json:"targetCounts" yaml:"targets"`
	TargetSize  Size         `json:"targetSize" yaml:"target_size"`
	PlayerSpeed int          `json:"playerSpeed" yaml:"player_speed"` // 1-5
	PlayerTrail Trail        `json:"playerTrail" yaml:"player_trail"`
	InputMethod InputMethod  `json:"inputMethod" yaml:"input_method"`
	InputBuffer int          `json:"inputBuffer" yaml:"input_buffer"` // ms
	Boundaries  Boundaries   `json:"boundaries" yaml:"boundaries"`
	Feedback    Feedback     `json:"feedback" yaml:"feedback"`

	CalmMode            bool        `json:"calmMode" yaml:"calm_mode"`
	DwellMode           bool        `json:"dwellMode" yaml:"dwell_mode"`
	DwellTime           int         `json:"dwellTime" yaml:"dwell_time"`               // ms
	JoystickDeadzone    int         `json:"joystickDeadzone" yaml:"joystick_deadzone"` // percent
	JoystickSensitivity Sensitivity `json:"joystickSensitivity" yaml:"joystick_sensitivity"`

	// Seed is the normalized replay code; hashed, it seeds placement.
	Seed string `json:"seed" yaml:"-"`
}

// Defaults applied to fields that older wire versions do not carry.
const (
	DefaultDwellTime        = 1000
	DefaultJoystickDeadzone = 15
	DefaultSensitivity      = SensitivityMedium
)

// DefaultConfig returns a config with every field set to its baseline value.
func DefaultConfig() Config {
	return Config{
		Targets:             TargetCounts{Stationary: 5},
		TargetSize:          SizeMedium,
		PlayerSpeed:         3,
		PlayerTrail:         TrailShort,
		InputMethod:         InputDiscrete,
		InputBuffer:         300,
		Boundaries:          BoundariesNone,
		Feedback:            Feedback{Audio: true, Visual: true},
		DwellTime:           DefaultDwellTime,
		JoystickDeadzone:    DefaultJoystickDeadzone,
		JoystickSensitivity: DefaultSensitivity,
	}
}
