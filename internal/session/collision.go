package session

import "time"

// DwellSettings configures sustained-contact collection.
type DwellSettings struct {
	Enabled bool
	Time    time.Duration // Required contact per target
	Tick    time.Duration // Contact credited per tick
}

// Collisions runs the per-tick contact pass. It owns dwell progress, keyed
// by target ID so removals never shift progress onto another target.
type Collisions struct {
	dwell    DwellSettings
	progress map[int]time.Duration
}

// NewCollisions creates a collision pass with the given dwell settings.
func NewCollisions(dwell DwellSettings) *Collisions {
	return &Collisions{
		dwell:    dwell,
		progress: make(map[int]time.Duration),
	}
}

// Progress returns dwell progress for a target in [0, 1].
func (c *Collisions) Progress(id int) float64 {
	if c.dwell.Time <= 0 {
		return 0
	}
	p := float64(c.progress[id]) / float64(c.dwell.Time)
	if p > 1 {
		return 1
	}
	return p
}

// Reset clears all dwell progress.
func (c *Collisions) Reset() {
	clear(c.progress)
}

// Contact reports whether the player's square hitbox touches the target circle.
func Contact(p Player, t Target) bool {
	return p.Box().CircleDistance(t.Pos) < t.Radius()
}

// Step resolves contacts between the player and every live target,
// filtering targets in place (the caller must use the returned slice) and
// updating st. It returns the surviving targets, the events produced, and
// whether no core target remains.
func (c *Collisions) Step(p Player, targets []Target, st *State) ([]Target, []Event, bool) {
	var events []Event
	resolved := false
	live := targets[:0]

	for _, t := range targets {
		if !Contact(p, t) {
			delete(c.progress, t.ID)
			live = append(live, t)
			continue
		}

		switch {
		case t.Kind == KindHazard:
			st.TimeAdjustments += t.TimePenalty
			st.HazardTargetsHit++
			events = append(events, HazardHit{Target: t, Seconds: t.TimePenalty})
			resolved = true

		case t.Kind == KindFlee || !c.dwell.Enabled:
			events = append(events, collect(t, st))
			resolved = true

		default:
			c.progress[t.ID] += c.dwell.Tick
			if c.progress[t.ID] >= c.dwell.Time {
				delete(c.progress, t.ID)
				events = append(events, collect(t, st))
				resolved = true
				continue
			}
			events = append(events, DwellProgress{TargetID: t.ID, Progress: c.Progress(t.ID)})
			live = append(live, t)
		}
	}

	remaining := countCore(live)
	if resolved {
		// Remaining counts are only known after the whole pass.
		for i, e := range events {
			if tc, ok := e.(TargetCollected); ok {
				tc.Remaining = remaining
				events[i] = tc
			}
		}
	}
	return live, events, remaining == 0
}

// collect applies a collection to st and returns its event.
func collect(t Target, st *State) Event {
	st.TargetsCollected++
	if t.Kind == KindBonus {
		st.TimeAdjustments -= t.TimeBonus
		st.BonusTargetsCollected++
		return BonusCollected{Target: t, Seconds: t.TimeBonus}
	}
	st.CoreTargetsCollected++
	return TargetCollected{Target: t}
}
