package session

import (
	"fmt"

	"github.com/vovakirdan/tui-targets/internal/core"
)

// Event is something a feedback collaborator (announcer, sound, haptics)
// may want to react to. Events never feed back into the session.
type Event interface {
	sessionEvent()
}

// TargetCollected is emitted when a core target is collected.
type TargetCollected struct {
	Target    Target
	Remaining int // Live core targets left
}

func (TargetCollected) sessionEvent() {}

// BonusCollected is emitted when a bonus target is collected.
type BonusCollected struct {
	Target  Target
	Seconds float64
}

func (BonusCollected) sessionEvent() {}

// HazardHit is emitted when the player touches a hazard.
type HazardHit struct {
	Target  Target
	Seconds float64
}

func (HazardHit) sessionEvent() {}

// DwellProgress is emitted each tick a dwell target is being held.
type DwellProgress struct {
	TargetID int
	Progress float64 // 0..1
}

func (DwellProgress) sessionEvent() {}

// BoundaryHit is emitted when visual boundaries stop the player.
type BoundaryHit struct {
	Pos core.Vec
}

func (BoundaryHit) sessionEvent() {}

// SessionCompleted is emitted once, when the last core target is gone.
type SessionCompleted struct {
	Record Record
}

func (SessionCompleted) sessionEvent() {}

// Listener receives events synchronously from the tick that produced them.
type Listener func(Event)

// Describe renders an event as a short announcement for screen readers and
// status lines. DwellProgress has no announcement.
func Describe(e Event) string {
	switch ev := e.(type) {
	case TargetCollected:
		if ev.Remaining == 1 {
			return "Target collected. 1 target left."
		}
		return fmt.Sprintf("Target collected. %d targets left.", ev.Remaining)
	case BonusCollected:
		return fmt.Sprintf("Bonus! %g seconds off.", ev.Seconds)
	case HazardHit:
		return fmt.Sprintf("Hazard! %g second penalty.", ev.Seconds)
	case BoundaryHit:
		return "Edge of field."
	case SessionCompleted:
		return fmt.Sprintf("All targets collected in %s.", FormatElapsed(ev.Record.TotalTime))
	default:
		return ""
	}
}
