package session

import "time"

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhasePaused
	PhaseCompleted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// State is the scoring and timing bookkeeping of one session.
// Zero StartTime/EndTime mean "not set".
type State struct {
	Seed            string        `json:"seed"`
	StartTime       time.Time     `json:"startTime"`
	EndTime         time.Time     `json:"endTime"`
	PausedTime      time.Duration `json:"pausedTime"`
	TimeAdjustments float64       `json:"timeAdjustments"` // Seconds, signed

	TargetsCollected      int `json:"targetsCollected"`
	CoreTargetsCollected  int `json:"coreTargetsCollected"`
	BonusTargetsCollected int `json:"bonusTargetsCollected"`
	HazardTargetsHit      int `json:"hazardTargetsHit"`
	TotalTargets          int `json:"totalTargets"`
	TotalCoreTargets      int `json:"totalCoreTargets"`

	Completed bool `json:"completed"`
}
