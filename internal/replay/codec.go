package replay

import (
	"errors"
	"fmt"
	"strings"
)

// Version identifies a wire format.
type Version int

const (
	VersionLegacy Version = iota // 14 payload digits, no trailer
	Version1                     // 14 payload digits + '1' + checksum
	Version2                     // 19 payload digits + '2' + checksum
)

// CurrentVersion is what Encode emits.
const CurrentVersion = Version2

// String returns a human-readable name for the version.
func (v Version) String() string {
	switch v {
	case VersionLegacy:
		return "legacy"
	case Version1:
		return "v1"
	case Version2:
		return "v2"
	default:
		return "unknown"
	}
}

// Payload and total lengths per version.
const (
	basePayloadLen = 14
	v2PayloadLen   = 19
	legacyLen      = basePayloadLen
	v1Len          = basePayloadLen + 2
	v2Len          = v2PayloadLen + 2
)

// Digit positions within the payload.
const (
	posStationary = iota
	posMoving
	posFlee
	posBonus
	posHazard
	posSize
	posSpeed
	posTrail
	posInput
	posBuffer
	posBoundaries
	posAudio
	posVisual
	posHaptic
	posCalm
	posDwell
	posDwellTime
	posDeadzone
	posSensitivity
)

// Decode errors. All of them wrap ErrInvalidCode.
var (
	ErrInvalidCode = errors.New("replay: invalid code")
	ErrLength      = fmt.Errorf("%w: unrecognized length", ErrInvalidCode)
	ErrNotDigits   = fmt.Errorf("%w: non-digit characters", ErrInvalidCode)
	ErrChecksum    = fmt.Errorf("%w: checksum mismatch", ErrInvalidCode)
	ErrVersion     = fmt.Errorf("%w: version digit mismatch", ErrInvalidCode)
	ErrField       = fmt.Errorf("%w: field out of range", ErrInvalidCode)
)

// ErrUnsupported is returned when a config uses values the requested
// version cannot represent.
var ErrUnsupported = errors.New("replay: value not representable in version")

// Encode serializes cfg with the current wire version.
func Encode(cfg Config) (string, error) {
	return EncodeVersion(cfg, CurrentVersion)
}

// EncodeVersion serializes cfg in the given wire version. Target counts are
// clamped to a single digit; quantized fields are rounded to their step.
func EncodeVersion(cfg Config, v Version) (string, error) {
	payloadLen := basePayloadLen
	trailLimit, inputLimit := v1TrailCount, v1InputCount
	if v == Version2 {
		payloadLen = v2PayloadLen
		trailLimit, inputLimit = len(trailTable), len(inputTable)
	} else if v != Version1 && v != VersionLegacy {
		return "", fmt.Errorf("replay: unknown version %d", v)
	}

	size := indexOf(sizeTable, cfg.TargetSize)
	if size < 0 {
		return "", fmt.Errorf("replay: unknown target size %q", cfg.TargetSize)
	}
	trail := indexOf(trailTable, cfg.PlayerTrail)
	if trail < 0 {
		return "", fmt.Errorf("replay: unknown trail %q", cfg.PlayerTrail)
	}
	if trail >= trailLimit {
		return "", fmt.Errorf("%w: trail %q in %s", ErrUnsupported, cfg.PlayerTrail, v)
	}
	input := indexOf(inputTable, cfg.InputMethod)
	if input < 0 {
		return "", fmt.Errorf("replay: unknown input method %q", cfg.InputMethod)
	}
	if input >= inputLimit {
		return "", fmt.Errorf("%w: input method %q in %s", ErrUnsupported, cfg.InputMethod, v)
	}
	bounds := indexOf(boundaryTable, cfg.Boundaries)
	if bounds < 0 {
		return "", fmt.Errorf("replay: unknown boundaries %q", cfg.Boundaries)
	}

	digits := make([]int, payloadLen)
	digits[posStationary] = clampInt(cfg.Targets.Stationary, 0, 9)
	digits[posMoving] = clampInt(cfg.Targets.Moving, 0, 9)
	digits[posFlee] = clampInt(cfg.Targets.Flee, 0, 9)
	digits[posBonus] = clampInt(cfg.Targets.Bonus, 0, 9)
	digits[posHazard] = clampInt(cfg.Targets.Hazard, 0, 9)
	digits[posSize] = size
	digits[posSpeed] = clampInt(cfg.PlayerSpeed, 1, 5)
	digits[posTrail] = trail
	digits[posInput] = input
	digits[posBuffer] = clampInt(roundHalfUp(cfg.InputBuffer, bufferStep), 0, 9)
	digits[posBoundaries] = bounds
	digits[posAudio] = boolDigit(cfg.Feedback.Audio)
	digits[posVisual] = boolDigit(cfg.Feedback.Visual)
	digits[posHaptic] = boolDigit(cfg.Feedback.Haptic)

	if v == Version2 {
		sens := indexOf(sensitivityTable, cfg.JoystickSensitivity)
		if sens < 0 {
			return "", fmt.Errorf("replay: unknown joystick sensitivity %q", cfg.JoystickSensitivity)
		}
		digits[posCalm] = boolDigit(cfg.CalmMode)
		digits[posDwell] = boolDigit(cfg.DwellMode)
		digits[posDwellTime] = clampInt(roundHalfUp(cfg.DwellTime-dwellBase, dwellStep), 0, maxDwellIdx)
		digits[posDeadzone] = clampInt(roundHalfUp(cfg.JoystickDeadzone-deadzoneBase, deadzoneStep), 0, maxZoneIdx)
		digits[posSensitivity] = sens
	}

	var sb strings.Builder
	sb.Grow(payloadLen + 2)
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	switch v {
	case Version1:
		sb.WriteByte('1')
		sb.WriteByte(byte('0' + checksum(digits)))
	case Version2:
		sb.WriteByte('2')
		sb.WriteByte(byte('0' + checksum(digits)))
	}
	return sb.String(), nil
}

// Seal encodes cfg with the current version and returns a copy whose Seed
// is the resulting code, ready to start a session from.
func Seal(cfg Config) (Config, error) {
	code, err := Encode(cfg)
	if err != nil {
		return Config{}, err
	}
	sealed, err := Decode(code)
	if err != nil {
		return Config{}, err
	}
	return sealed, nil
}

// Normalize strips an optional COLOR-SHAPE- prefix and surrounding spaces.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if strings.Contains(code, "-") {
		parts := strings.Split(code, "-")
		if len(parts) < 3 {
			return ""
		}
		code = parts[2]
	}
	return code
}

// VersionOf detects the wire version of code by its length.
func VersionOf(code string) (Version, error) {
	switch len(Normalize(code)) {
	case v2Len:
		return Version2, nil
	case v1Len:
		return Version1, nil
	case legacyLen:
		return VersionLegacy, nil
	default:
		return 0, ErrLength
	}
}

// Decode parses a replay code of any supported version. Decoding is atomic:
// any malformed digit rejects the whole code. Fields absent from older
// versions take their documented defaults.
func Decode(code string) (Config, error) {
	code = Normalize(code)
	v, err := VersionOf(code)
	if err != nil {
		return Config{}, err
	}

	digits := make([]int, len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return Config{}, ErrNotDigits
		}
		digits[i] = int(c - '0')
	}

	payload := digits
	trailLimit, inputLimit := v1TrailCount, v1InputCount
	switch v {
	case Version1, Version2:
		payload = digits[:len(digits)-2]
		want := byte('1')
		if v == Version2 {
			want = '2'
			trailLimit, inputLimit = len(trailTable), len(inputTable)
		}
		if code[len(code)-2] != want {
			return Config{}, ErrVersion
		}
		if checksum(payload) != digits[len(digits)-1] {
			return Config{}, ErrChecksum
		}
	}

	cfg := Config{
		Targets: TargetCounts{
			Stationary: payload[posStationary],
			Moving:     payload[posMoving],
			Flee:       payload[posFlee],
			Bonus:      payload[posBonus],
			Hazard:     payload[posHazard],
		},
		PlayerSpeed:         payload[posSpeed],
		InputBuffer:         payload[posBuffer] * bufferStep,
		DwellTime:           DefaultDwellTime,
		JoystickDeadzone:    DefaultJoystickDeadzone,
		JoystickSensitivity: DefaultSensitivity,
		Seed:                code,
	}

	if payload[posSize] >= len(sizeTable) ||
		payload[posSpeed] < 1 || payload[posSpeed] > 5 ||
		payload[posTrail] >= trailLimit ||
		payload[posInput] >= inputLimit ||
		payload[posBoundaries] >= len(boundaryTable) {
		return Config{}, ErrField
	}
	cfg.TargetSize = sizeTable[payload[posSize]]
	cfg.PlayerTrail = trailTable[payload[posTrail]]
	cfg.InputMethod = inputTable[payload[posInput]]
	cfg.Boundaries = boundaryTable[payload[posBoundaries]]

	var ok bool
	if cfg.Feedback.Audio, ok = digitBool(payload[posAudio]); !ok {
		return Config{}, ErrField
	}
	if cfg.Feedback.Visual, ok = digitBool(payload[posVisual]); !ok {
		return Config{}, ErrField
	}
	if cfg.Feedback.Haptic, ok = digitBool(payload[posHaptic]); !ok {
		return Config{}, ErrField
	}

	if len(payload) >= v2PayloadLen {
		if cfg.CalmMode, ok = digitBool(payload[posCalm]); !ok {
			return Config{}, ErrField
		}
		if cfg.DwellMode, ok = digitBool(payload[posDwell]); !ok {
			return Config{}, ErrField
		}
		if payload[posDwellTime] > maxDwellIdx ||
			payload[posDeadzone] > maxZoneIdx ||
			payload[posSensitivity] >= len(sensitivityTable) {
			return Config{}, ErrField
		}
		cfg.DwellTime = dwellBase + payload[posDwellTime]*dwellStep
		cfg.JoystickDeadzone = deadzoneBase + payload[posDeadzone]*deadzoneStep
		cfg.JoystickSensitivity = sensitivityTable[payload[posSensitivity]]
	}

	return cfg, nil
}

// checksum is the payload digit sum mod 10.
func checksum(payload []int) int {
	sum := 0
	for _, d := range payload {
		sum += d
	}
	return sum % 10
}

func digitBool(d int) (bool, bool) {
	switch d {
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		return false, false
	}
}
