package session

import (
	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/core"
	"github.com/vovakirdan/tui-targets/internal/prng"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

// Field is the play area size in field units.
type Field struct {
	Width  float64
	Height float64
}

// Center returns the middle of the field.
func (f Field) Center() core.Vec {
	return core.Vec{X: f.Width / 2, Y: f.Height / 2}
}

// Layout is the deterministic output of Place.
type Layout struct {
	Player  core.Vec
	Targets []Target

	// Seeded is false when the config had no seed and the layout came from
	// a random stream.
	Seeded bool

	// Fallbacks counts targets that were placed after exhausting every
	// attempt, possibly violating spacing.
	Fallbacks int
}

// TotalCore returns how many placed targets count toward completion.
func (l Layout) TotalCore() int {
	return countCore(l.Targets)
}

// Place lays out the player and targets for cfg on field.
//
// PRNG call order (changing it breaks every shared replay code):
//  1. player x, player y (skipped when unseeded)
//  2. for each kind in Kinds, for each requested target: up to
//     MaxAttempts (x, y) pairs, then kind-specific draws
//     (moving: vx, vy; flee: speed)
//  3. forced static target, if any, same as above
func Place(cfg replay.Config, field Field, tc config.TrainerConfig) Layout {
	size := tc.SizeFor(cfg.TargetSize)
	seed, seeded := prng.HashSeed(cfg.Seed)
	p := &placer{
		rng:   prng.New(seed),
		field: field,
		tc:    tc,
		size:  size,
	}

	layout := Layout{Seeded: seeded}
	if seeded {
		margin := size + tc.Placement.PlayerMargin
		layout.Player = core.Vec{
			X: margin + p.rng.Next()*(field.Width-2*margin),
			Y: margin + p.rng.Next()*(field.Height-2*margin),
		}
	} else {
		layout.Player = field.Center()
	}
	p.player = layout.Player

	counts := clampCounts(cfg.Targets)
	for _, kind := range Kinds {
		for i := 0; i < countFor(counts, kind); i++ {
			p.place(kind)
		}
	}

	if counts.Total() == 0 || counts.Core() == 0 {
		p.place(KindStatic)
	}

	layout.Targets = p.targets
	layout.Fallbacks = p.fallbacks
	return layout
}

type placer struct {
	rng       *prng.PRNG
	field     Field
	tc        config.TrainerConfig
	size      float64
	player    core.Vec
	targets   []Target
	fallbacks int
}

// place samples a position for one target of kind and appends it.
func (p *placer) place(kind Kind) {
	margin := p.size + p.tc.Placement.EdgeMargin
	spanX := max(0, p.field.Width-2*margin)
	spanY := max(0, p.field.Height-2*margin)

	ov := p.tc.Placement.Overlay
	overlay := core.Box{
		Max: core.Vec{X: ov.Width + ov.Margin, Y: ov.Height + ov.Margin},
	}
	clearance := p.size * p.tc.Placement.PlayerClearance
	spacing := p.size * p.tc.Placement.TargetSpacing

	var pos core.Vec
	accepted := false
	for attempt := 0; attempt < p.tc.Placement.MaxAttempts; attempt++ {
		pos = core.Vec{
			X: margin + p.rng.Next()*spanX,
			Y: margin + p.rng.Next()*spanY,
		}
		if core.Dist(pos, p.player) < clearance {
			continue
		}
		if overlay.Contains(pos) {
			continue
		}
		if p.tooClose(pos, spacing) {
			continue
		}
		accepted = true
		break
	}
	if !accepted {
		p.fallbacks++
	}

	p.targets = append(p.targets, p.build(kind, pos))
}

func (p *placer) tooClose(pos core.Vec, spacing float64) bool {
	for _, t := range p.targets {
		if core.Dist(pos, t.Pos) < spacing {
			return true
		}
	}
	return false
}

// build constructs a target record, drawing kind-specific values.
func (p *placer) build(kind Kind, pos core.Vec) Target {
	t := Target{
		ID:          len(p.targets) + 1,
		Kind:        kind,
		Pos:         pos,
		Size:        p.size,
		Collectible: true,
		Color:       kind.Color(),
	}

	tt := p.tc.Targets
	switch kind {
	case KindStatic:
	case KindMoving:
		t.Velocity = core.Vec{
			X: (p.rng.Next()*2 - 1) * tt.MovingSpeed,
			Y: (p.rng.Next()*2 - 1) * tt.MovingSpeed,
		}
	case KindFlee:
		t.FleeSpeed = tt.FleeSpeedMin + p.rng.Next()*tt.FleeSpeedRange
		t.DetectionRadius = p.size * tt.FleeRadiusFactor
	case KindBonus:
		t.TimeBonus = tt.BonusSeconds
	case KindHazard:
		t.Collectible = false
		t.TimePenalty = tt.HazardSeconds
	}
	return t
}

func clampCounts(c replay.TargetCounts) replay.TargetCounts {
	return replay.TargetCounts{
		Stationary: core.Clamp(c.Stationary, 0, 9),
		Moving:     core.Clamp(c.Moving, 0, 9),
		Flee:       core.Clamp(c.Flee, 0, 9),
		Bonus:      core.Clamp(c.Bonus, 0, 9),
		Hazard:     core.Clamp(c.Hazard, 0, 9),
	}
}

func countFor(c replay.TargetCounts, kind Kind) int {
	switch kind {
	case KindStatic:
		return c.Stationary
	case KindMoving:
		return c.Moving
	case KindFlee:
		return c.Flee
	case KindBonus:
		return c.Bonus
	case KindHazard:
		return c.Hazard
	default:
		return 0
	}
}
