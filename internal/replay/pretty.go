package replay

import "github.com/vovakirdan/tui-targets/internal/prng"

var (
	prefixColors = []string{"RED", "BLUE", "GREEN", "GOLD", "PURPLE", "ORANGE", "TEAL", "PINK"}
	prefixShapes = []string{"CIRCLE", "SQUARE", "STAR", "HEART", "DIAMOND", "MOON", "CLOUD", "BOLT"}
)

// Pretty prefixes a code with a memorable COLOR-SHAPE- label derived from
// the code itself. The label is cosmetic; Decode ignores it.
func Pretty(code string) string {
	code = Normalize(code)
	seed, ok := prng.HashSeed(code)
	if !ok {
		return code
	}
	color := prefixColors[seed%uint32(len(prefixColors))]
	shape := prefixShapes[(seed/uint32(len(prefixColors)))%uint32(len(prefixShapes))]
	return color + "-" + shape + "-" + code
}
