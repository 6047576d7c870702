package replay

// Wire enumerations. Positions are part of the format and must never be
// reordered; new values may only be appended in a new version.
var (
	sizeTable        = []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}
	trailTable       = []Trail{TrailShort, TrailLong, TrailOff}
	inputTable       = []InputMethod{InputDiscrete, InputContinuous, InputMouse, InputJoystick, InputCursor}
	boundaryTable    = []Boundaries{BoundariesNone, BoundariesVisual, BoundariesHard}
	sensitivityTable = []Sensitivity{SensitivityLow, SensitivityMedium, SensitivityHigh}
)

// Entries of each table understood by v1 and legacy decoders.
const (
	v1TrailCount = 2
	v1InputCount = 3
)

// Quantization steps.
const (
	bufferStep   = 50
	dwellBase    = 500
	dwellStep    = 500
	deadzoneBase = 5
	deadzoneStep = 5
	maxDwellIdx  = 5
	maxZoneIdx   = 5
)

func indexOf[T comparable](table []T, v T) int {
	for i, entry := range table {
		if entry == v {
			return i
		}
	}
	return -1
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// roundHalfUp matches the rounding used when codes were first issued:
// halves round toward positive infinity.
func roundHalfUp(num, den int) int {
	if den <= 0 {
		return 0
	}
	q := num / den
	r := num % den
	if r < 0 {
		r += den
		q--
	}
	if 2*r >= den {
		q++
	}
	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
