package replay

import (
	"errors"
	"strings"
	"testing"
)

func baseConfig() Config {
	return Config{
		Targets:     TargetCounts{Stationary: 5},
		TargetSize:  SizeMedium,
		PlayerSpeed: 3,
		PlayerTrail: TrailShort,
		InputMethod: InputDiscrete,
		InputBuffer: 300,
		Boundaries:  BoundariesNone,
		Feedback:    Feedback{Audio: true, Visual: true},
	}
}

func TestEncodeVersions(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{"v2", Version2, "500001300601100012121"},
		{"v1", Version1, "5000013006011017"},
		{"legacy", VersionLegacy, "50000130060110"},
	}

	cfg := baseConfig()
	cfg.DwellTime = 1000
	cfg.JoystickDeadzone = 15
	cfg.JoystickSensitivity = SensitivityMedium

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, err := EncodeVersion(cfg, tc.version)
			if err != nil {
				t.Fatalf("EncodeVersion() failed: %v", err)
			}
			if code != tc.expected {
				t.Errorf("EncodeVersion() = %q, expected %q", code, tc.expected)
			}
		})
	}
}

func TestDecodeAppliesDefaults(t *testing.T) {
	for _, code := range []string{"5000013006011017", "50000130060110"} {
		cfg, err := Decode(code)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", code, err)
		}
		if cfg.CalmMode || cfg.DwellMode {
			t.Errorf("Decode(%q): calm/dwell should default to false", code)
		}
		if cfg.DwellTime != 1000 {
			t.Errorf("Decode(%q): DwellTime = %d, expected 1000", code, cfg.DwellTime)
		}
		if cfg.JoystickDeadzone != 15 {
			t.Errorf("Decode(%q): JoystickDeadzone = %d, expected 15", code, cfg.JoystickDeadzone)
		}
		if cfg.JoystickSensitivity != SensitivityMedium {
			t.Errorf("Decode(%q): JoystickSensitivity = %q, expected medium", code, cfg.JoystickSensitivity)
		}
		if cfg.Targets.Stationary != 5 || cfg.TargetSize != SizeMedium || cfg.PlayerSpeed != 3 {
			t.Errorf("Decode(%q) base fields wrong: %+v", code, cfg)
		}
		if cfg.InputBuffer != 300 {
			t.Errorf("Decode(%q): InputBuffer = %d, expected 300", code, cfg.InputBuffer)
		}
	}
}

func TestLegacySkipsChecksum(t *testing.T) {
	// The last digit of a 14-digit code is payload, not a checksum, so any
	// value is accepted.
	cfg, err := Decode("50000321090011")
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if cfg.Targets.Stationary != 5 || cfg.Targets.Hazard != 0 {
		t.Errorf("unexpected counts: %+v", cfg.Targets)
	}
	if cfg.TargetSize != SizeExtraLarge {
		t.Errorf("TargetSize = %q, expected extra-large", cfg.TargetSize)
	}
	if cfg.PlayerSpeed != 2 {
		t.Errorf("PlayerSpeed = %d, expected 2", cfg.PlayerSpeed)
	}
	if cfg.PlayerTrail != TrailLong || cfg.InputMethod != InputDiscrete {
		t.Errorf("unexpected trail/input: %q %q", cfg.PlayerTrail, cfg.InputMethod)
	}
	if cfg.InputBuffer != 450 || cfg.Boundaries != BoundariesNone {
		t.Errorf("unexpected buffer/boundaries: %d %q", cfg.InputBuffer, cfg.Boundaries)
	}
	if cfg.Feedback != (Feedback{Audio: false, Visual: true, Haptic: true}) {
		t.Errorf("unexpected feedback: %+v", cfg.Feedback)
	}
}

func TestRoundTripV2(t *testing.T) {
	for _, size := range sizeTable {
		for _, trail := range trailTable {
			for _, input := range inputTable {
				for _, bounds := range boundaryTable {
					for _, sens := range sensitivityTable {
						cfg := Config{
							Targets:             TargetCounts{Stationary: 3, Moving: 2, Flee: 1, Bonus: 4, Hazard: 9},
							TargetSize:          size,
							PlayerSpeed:         5,
							PlayerTrail:         trail,
							InputMethod:         input,
							InputBuffer:         450,
							Boundaries:          bounds,
							Feedback:            Feedback{Audio: false, Visual: true, Haptic: true},
							CalmMode:            true,
							DwellMode:           true,
							DwellTime:           2500,
							JoystickDeadzone:    30,
							JoystickSensitivity: sens,
						}
						code, err := Encode(cfg)
						if err != nil {
							t.Fatalf("Encode(%+v) failed: %v", cfg, err)
						}
						got, err := Decode(code)
						if err != nil {
							t.Fatalf("Decode(%q) failed: %v", code, err)
						}
						cfg.Seed = code
						if got != cfg {
							t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, cfg)
						}
					}
				}
			}
		}
	}
}

func TestRoundTripV1(t *testing.T) {
	cfg := baseConfig()
	cfg.PlayerTrail = TrailLong
	cfg.InputMethod = InputMouse
	cfg.Boundaries = BoundariesHard
	cfg.Feedback.Haptic = true
	// v2-only fields are dropped and come back as defaults.
	cfg.CalmMode = true
	cfg.DwellTime = 3000

	code, err := EncodeVersion(cfg, Version1)
	if err != nil {
		t.Fatalf("EncodeVersion() failed: %v", err)
	}
	got, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	want := cfg
	want.CalmMode = false
	want.DwellTime = DefaultDwellTime
	want.JoystickDeadzone = DefaultJoystickDeadzone
	want.JoystickSensitivity = DefaultSensitivity
	want.Seed = code
	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestEncodeClampsAndQuantizes(t *testing.T) {
	cfg := baseConfig()
	cfg.Targets = TargetCounts{Stationary: 12, Moving: -3, Flee: 9}
	cfg.InputBuffer = 1000
	cfg.DwellTime = 1740
	cfg.JoystickDeadzone = 2
	cfg.JoystickSensitivity = SensitivityHigh

	code, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if got.Targets.Stationary != 9 || got.Targets.Moving != 0 || got.Targets.Flee != 9 {
		t.Errorf("counts not clamped: %+v", got.Targets)
	}
	if got.InputBuffer != 450 {
		t.Errorf("InputBuffer = %d, expected 450", got.InputBuffer)
	}
	if got.DwellTime != 1500 {
		t.Errorf("DwellTime = %d, expected 1500", got.DwellTime)
	}
	if got.JoystickDeadzone != 5 {
		t.Errorf("JoystickDeadzone = %d, expected 5", got.JoystickDeadzone)
	}
}

func TestEncodeUnsupportedInOldVersion(t *testing.T) {
	cfg := baseConfig()
	cfg.InputMethod = InputJoystick
	if _, err := EncodeVersion(cfg, Version1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for joystick in v1, got %v", err)
	}

	cfg = baseConfig()
	cfg.PlayerTrail = TrailOff
	if _, err := EncodeVersion(cfg, VersionLegacy); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for trail off in legacy, got %v", err)
	}
}

func TestChecksumRejectsSingleDigitMutation(t *testing.T) {
	for _, code := range []string{"500001300601100012121", "5000013006011017"} {
		payloadLen := len(code) - 2
		for i := 0; i < payloadLen; i++ {
			b := []byte(code)
			b[i] = '0' + (b[i]-'0'+1)%10
			mutated := string(b)
			if _, err := Decode(mutated); !errors.Is(err, ErrInvalidCode) {
				t.Errorf("Decode(%q) should fail after mutating digit %d", mutated, i)
			}
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		code string
		err  error
	}{
		{"empty", "", ErrLength},
		{"too short", "12345", ErrLength},
		{"15 digits", "500001300601100", ErrLength},
		{"letters", "50000130060a100012121", ErrNotDigits},
		{"bad checksum", "500001300601100012120", ErrChecksum},
		{"wrong version digit", "500001300601100012131", ErrVersion},
		{"v1 digit on v2 length", "500001300601100012111", ErrVersion},
		{"size out of range", "50000530060110", ErrField},
		{"speed zero", "50000100060110", ErrField},
		{"joystick in legacy", "50000130360110", ErrField},
		{"feedback not a bit", "50000130060150", ErrField},
		{"two segment prefix", "BLUE-500001300601100012121", ErrLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.code)
			if !errors.Is(err, tc.err) {
				t.Errorf("Decode(%q) error = %v, expected %v", tc.code, err, tc.err)
			}
			if !errors.Is(err, ErrInvalidCode) {
				t.Errorf("Decode(%q) error should wrap ErrInvalidCode", tc.code)
			}
		})
	}
}

func TestDecodeStripsPrefix(t *testing.T) {
	cfg, err := Decode("  BLUE-CIRCLE-500001300601100012121 ")
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if cfg.Seed != "500001300601100012121" {
		t.Errorf("Seed = %q, expected the bare digits", cfg.Seed)
	}
}

func TestPretty(t *testing.T) {
	code := "500001300601100012121"
	pretty := Pretty(code)
	if !strings.HasSuffix(pretty, "-"+code) {
		t.Fatalf("Pretty() = %q, should end with the code", pretty)
	}
	if strings.Count(pretty, "-") != 2 {
		t.Errorf("Pretty() = %q, expected exactly two separators", pretty)
	}
	if Pretty(code) != pretty {
		t.Error("Pretty() should be deterministic")
	}
	if Pretty(pretty) != pretty {
		t.Error("Pretty() of a prefixed code should not stack prefixes")
	}
	if Pretty("") != "" {
		t.Error("Pretty() of an empty code should stay empty")
	}

	decoded, err := Decode(pretty)
	if err != nil {
		t.Fatalf("Decode(Pretty()) failed: %v", err)
	}
	if decoded.Seed != code {
		t.Errorf("Seed = %q, expected %q", decoded.Seed, code)
	}
}

func TestSeal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputBuffer = 310

	sealed, err := Seal(cfg)
	if err != nil {
		t.Fatalf("Seal() failed: %v", err)
	}
	if sealed.Seed != "500001300601100012121" {
		t.Errorf("Seed = %q", sealed.Seed)
	}
	if sealed.InputBuffer != 300 {
		t.Errorf("InputBuffer = %d, expected quantized 300", sealed.InputBuffer)
	}
}

func TestVersionOf(t *testing.T) {
	tests := map[string]Version{
		"500001300601100012121":          Version2,
		"5000013006011017":               Version1,
		"50000130060110":                 VersionLegacy,
		"RED-STAR-500001300601100012121": Version2,
	}
	for code, want := range tests {
		got, err := VersionOf(code)
		if err != nil {
			t.Errorf("VersionOf(%q) failed: %v", code, err)
			continue
		}
		if got != want {
			t.Errorf("VersionOf(%q) = %s, expected %s", code, got, want)
		}
	}
}
