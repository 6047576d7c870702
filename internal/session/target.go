// Package session implements the deterministic training session engine:
// seeded target placement, per-tick player and target motion, collision
// and dwell detection, and the pause-aware session timer.
//
// A Session is single-threaded and owned by one tick loop. It holds the
// only PRNG stream for its layout; sharing a Session between goroutines or
// reseeding it mid-placement breaks replay determinism.
package session

import (
	"github.com/vovakirdan/tui-targets/internal/core"
)

// Kind is the target variant.
type Kind int

// Placement iterates kinds in this order; it is part of the replay format.
const (
	KindStatic Kind = iota
	KindMoving
	KindFlee
	KindBonus
	KindHazard
)

// Kinds lists every kind in placement order.
var Kinds = []Kind{KindStatic, KindMoving, KindFlee, KindBonus, KindHazard}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindMoving:
		return "moving"
	case KindFlee:
		return "flee"
	case KindBonus:
		return "bonus"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// IsCore reports whether targets of this kind count toward completion.
func (k Kind) IsCore() bool {
	return k == KindStatic || k == KindMoving || k == KindFlee
}

// Color returns the display color for the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindStatic:
		return core.ColorBrightCyan
	case KindMoving:
		return core.ColorBrightBlue
	case KindFlee:
		return core.ColorBrightMagenta
	case KindBonus:
		return core.ColorBrightGreen
	case KindHazard:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Target is a single on-field target. Kind selects which of the
// kind-specific fields are meaningful:
//
//	KindMoving: Velocity
//	KindFlee:   FleeSpeed, DetectionRadius
//	KindBonus:  TimeBonus
//	KindHazard: TimePenalty (Collectible is false)
type Target struct {
	ID          int      // Unique within the session, assigned at placement
	Kind        Kind
	Pos         core.Vec // Center, field units
	Size        float64  // Diameter, field units
	Collectible bool
	CreatedAt   int64 // Tick the target was created on
	Color       core.Color

	Velocity        core.Vec // Units per tick
	FleeSpeed       float64  // Units per tick
	DetectionRadius float64
	TimeBonus       float64 // Seconds subtracted on collection
	TimePenalty     float64 // Seconds added on contact
}

// Radius returns half the target size.
func (t Target) Radius() float64 {
	return t.Size / 2
}

// countCore returns the number of live core targets.
func countCore(targets []Target) int {
	n := 0
	for _, t := range targets {
		if t.Kind.IsCore() {
			n++
		}
	}
	return n
}
