package session

import "math"

// TargetSnapshot is the comparable part of one live target.
type TargetSnapshot struct {
	ID   int
	Kind Kind
	X, Y float64
}

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick                 int64
	Phase                Phase
	PlayerX              float64
	PlayerY              float64
	TrailLen             int
	Targets              []TargetSnapshot
	TargetsCollected     int
	CoreTargetsCollected int
	HazardTargetsHit     int
	TimeAdjustments      float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	targets := make([]TargetSnapshot, 0, len(s.targets))
	for _, t := range s.targets {
		targets = append(targets, TargetSnapshot{ID: t.ID, Kind: t.Kind, X: t.Pos.X, Y: t.Pos.Y})
	}
	return Snapshot{
		Tick:                 s.tick,
		Phase:                s.phase,
		PlayerX:              s.player.Pos.X,
		PlayerY:              s.player.Pos.Y,
		TrailLen:             len(s.player.Trail),
		Targets:              targets,
		TargetsCollected:     s.state.TargetsCollected,
		CoreTargetsCollected: s.state.CoreTargetsCollected,
		HazardTargetsHit:     s.state.HazardTargetsHit,
		TimeAdjustments:      s.state.TimeAdjustments,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	var h uint64
	mixInt := func(v int64) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mixFloat := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}

	mixInt(snap.Tick)
	mixInt(int64(snap.Phase))
	mixFloat(snap.PlayerX)
	mixFloat(snap.PlayerY)
	mixInt(int64(snap.TrailLen))
	mixInt(int64(snap.TargetsCollected))
	mixInt(int64(snap.CoreTargetsCollected))
	mixInt(int64(snap.HazardTargetsHit))
	mixFloat(snap.TimeAdjustments)
	for _, t := range snap.Targets {
		mixInt(int64(t.ID))
		mixInt(int64(t.Kind))
		mixFloat(t.X)
		mixFloat(t.Y)
	}
	return h
}
