package session

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/core"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

// Joystick response multipliers.
var sensitivityScale = map[replay.Sensitivity]float64{
	replay.SensitivityLow:    0.6,
	replay.SensitivityMedium: 1.0,
	replay.SensitivityHigh:   1.5,
}

// mover applies one tick of player input.
type mover struct {
	method      replay.InputMethod
	bounds      replay.Boundaries
	speed       float64       // Units per tick for continuous/pointer/stick motion
	step        float64       // Units per discrete step
	buffer      time.Duration // Minimum time between discrete steps
	deadzone    float64       // Stick magnitude ignored, 0..1
	sensitivity float64
	trail       int
	field       Field

	lastStep time.Duration
	stepped  bool
}

func newMover(cfg replay.Config, tc config.TrainerConfig, field Field, size float64) *mover {
	sens, ok := sensitivityScale[cfg.JoystickSensitivity]
	if !ok {
		sens = 1.0
	}
	return &mover{
		method:      cfg.InputMethod,
		bounds:      cfg.Boundaries,
		speed:       float64(core.Clamp(cfg.PlayerSpeed, 1, 5)) * tc.Player.SpeedStep,
		step:        size,
		buffer:      time.Duration(cfg.InputBuffer) * time.Millisecond,
		deadzone:    float64(cfg.JoystickDeadzone) / 100,
		sensitivity: sens,
		trail:       tc.TrailLength(cfg.PlayerTrail),
		field:       field,
	}
}

// move advances the player for one tick at simulated time now.
// It reports whether visual boundaries stopped the player.
func (m *mover) move(p *Player, in core.InputFrame, now time.Duration) bool {
	prev := p.Pos
	var delta core.Vec

	switch m.method {
	case replay.InputDiscrete:
		dir := in.Direction()
		if dir != (core.Vec{}) && (!m.stepped || now-m.lastStep >= m.buffer) {
			delta = dir.Scale(m.step)
			m.lastStep = now
			m.stepped = true
		}

	case replay.InputContinuous:
		if dir := in.Direction(); dir != (core.Vec{}) {
			if p.ContinuousDir != nil && *p.ContinuousDir == dir {
				p.ContinuousDir = nil
			} else {
				d := dir
				p.ContinuousDir = &d
			}
		}
		if p.ContinuousDir != nil {
			delta = unit(*p.ContinuousDir).Scale(m.speed)
		}

	case replay.InputMouse:
		if in.Pointer != nil {
			dest := *in.Pointer
			p.Dest = &dest
		}
		delta = m.towardDest(p)

	case replay.InputCursor:
		if dir := in.Direction(); dir != (core.Vec{}) {
			base := p.Pos
			if p.Dest != nil {
				base = *p.Dest
			}
			dest := m.clampToField(base.Add(dir.Scale(m.step)), p.Size)
			p.Dest = &dest
		}
		delta = m.towardDest(p)

	case replay.InputJoystick:
		delta = m.stickDelta(in.Stick)
	}

	if delta == (core.Vec{}) {
		return false
	}

	next := prev.Add(delta)
	hit := false
	switch m.bounds {
	case replay.BoundariesNone:
		next = core.Vec{
			X: core.Wrap(next.X, m.field.Width),
			Y: core.Wrap(next.Y, m.field.Height),
		}
	default:
		clamped := m.clampToField(next, p.Size)
		hit = clamped != next && m.bounds == replay.BoundariesVisual
		next = clamped
	}

	if next != prev {
		p.pushTrail(prev, m.trail)
		p.Pos = next
	}
	return hit
}

// towardDest moves at most one speed step toward the destination.
func (m *mover) towardDest(p *Player) core.Vec {
	if p.Dest == nil {
		return core.Vec{}
	}
	diff := p.Dest.Sub(p.Pos)
	dist := diff.Len()
	if dist <= m.speed {
		p.Dest = nil
		return diff
	}
	return diff.Scale(m.speed / dist)
}

// stickDelta applies the deadzone and sensitivity to a stick vector.
func (m *mover) stickDelta(stick core.Vec) core.Vec {
	mag := stick.Len()
	if mag <= m.deadzone || mag == 0 {
		return core.Vec{}
	}
	if mag > 1 {
		stick = stick.Scale(1 / mag)
		mag = 1
	}
	strength := (mag - m.deadzone) / (1 - m.deadzone)
	return stick.Scale(1 / mag).Scale(strength * m.speed * m.sensitivity)
}

func (m *mover) clampToField(v core.Vec, size float64) core.Vec {
	half := size / 2
	return core.Vec{
		X: core.ClampF(v.X, half, math.Max(half, m.field.Width-half)),
		Y: core.ClampF(v.Y, half, math.Max(half, m.field.Height-half)),
	}
}

func unit(v core.Vec) core.Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// moveTargets advances moving and fleeing targets by one tick.
func moveTargets(targets []Target, player core.Vec, field Field, calm float64) {
	for i := range targets {
		t := &targets[i]
		r := t.Radius()
		switch t.Kind {
		case KindMoving:
			t.Pos = t.Pos.Add(t.Velocity.Scale(calm))
			if t.Pos.X < r || t.Pos.X > field.Width-r {
				t.Velocity.X = -t.Velocity.X
				t.Pos.X = core.ClampF(t.Pos.X, r, math.Max(r, field.Width-r))
			}
			if t.Pos.Y < r || t.Pos.Y > field.Height-r {
				t.Velocity.Y = -t.Velocity.Y
				t.Pos.Y = core.ClampF(t.Pos.Y, r, math.Max(r, field.Height-r))
			}

		case KindFlee:
			away := t.Pos.Sub(player)
			dist := away.Len()
			if dist >= t.DetectionRadius || dist == 0 {
				continue
			}
			t.Pos = t.Pos.Add(away.Scale(t.FleeSpeed * calm / dist))
			t.Pos.X = core.ClampF(t.Pos.X, r, math.Max(r, field.Width-r))
			t.Pos.Y = core.ClampF(t.Pos.Y, r, math.Max(r, field.Height-r))

		case KindStatic, KindBonus, KindHazard:
		}
	}
}
