package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/core"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

func newTestMover(method replay.InputMethod, bounds replay.Boundaries) *mover {
	cfg := replay.DefaultConfig()
	cfg.InputMethod = method
	cfg.Boundaries = bounds
	return newMover(cfg, config.DefaultTrainerConfig(), testField, 30)
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDiscreteInputBuffer(t *testing.T) {
	m := newTestMover(replay.InputDiscrete, replay.BoundariesHard)
	p := &Player{Pos: core.Vec{X: 100, Y: 100}, Size: 30}

	m.move(p, frame(core.ActionRight), 0)
	if p.Pos.X != 130 {
		t.Fatalf("X = %v after first step, want 130", p.Pos.X)
	}

	m.move(p, frame(core.ActionRight), 100*time.Millisecond)
	if p.Pos.X != 130 {
		t.Errorf("X = %v, step inside the buffer must be ignored", p.Pos.X)
	}

	m.move(p, frame(core.ActionRight), 300*time.Millisecond)
	if p.Pos.X != 160 {
		t.Errorf("X = %v after buffered step, want 160", p.Pos.X)
	}
	if len(p.Trail) != 2 || p.Trail[0].X != 130 {
		t.Errorf("Trail = %+v, want newest-first [130, 100]", p.Trail)
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		bounds  replay.Boundaries
		wantX   float64
		wantHit bool
	}{
		{"hard clamps", replay.BoundariesHard, 15, false},
		{"visual clamps and reports", replay.BoundariesVisual, 15, true},
		{"none wraps", replay.BoundariesNone, 790, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMover(replay.InputDiscrete, tt.bounds)
			p := &Player{Pos: core.Vec{X: 20, Y: 100}, Size: 30}

			hit := m.move(p, frame(core.ActionLeft), 0)

			if !approx(p.Pos.X, tt.wantX) {
				t.Errorf("X = %v, want %v", p.Pos.X, tt.wantX)
			}
			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v", hit, tt.wantHit)
			}
		})
	}
}

func TestContinuousToggle(t *testing.T) {
	m := newTestMover(replay.InputContinuous, replay.BoundariesHard)
	p := &Player{Pos: core.Vec{X: 100, Y: 100}, Size: 30}

	m.move(p, frame(core.ActionDown), 0)
	if p.ContinuousDir == nil {
		t.Fatal("Expected a held direction")
	}
	m.move(p, core.NewInputFrame(), 0)
	if p.Pos.Y != 100+2*m.speed {
		t.Errorf("Y = %v, want %v", p.Pos.Y, 100+2*m.speed)
	}

	m.move(p, frame(core.ActionDown), 0)
	if p.ContinuousDir != nil {
		t.Error("Pressing the held direction again should stop")
	}
}

func TestPointerMovesTowardDest(t *testing.T) {
	m := newTestMover(replay.InputMouse, replay.BoundariesHard)
	p := &Player{Pos: core.Vec{X: 100, Y: 100}, Size: 30}

	in := core.NewInputFrame()
	in.Pointer = &core.Vec{X: 200, Y: 100}
	m.move(p, in, 0)
	if !approx(p.Pos.X, 100+m.speed) {
		t.Errorf("X = %v, want %v", p.Pos.X, 100+m.speed)
	}

	for i := 0; i < 100; i++ {
		m.move(p, core.NewInputFrame(), 0)
	}
	if p.Pos.X != 200 || p.Dest != nil {
		t.Errorf("Expected arrival at 200 with no destination, got %+v dest=%v", p.Pos, p.Dest)
	}
}

func TestStickDeadzone(t *testing.T) {
	m := newTestMover(replay.InputJoystick, replay.BoundariesHard)
	p := &Player{Pos: core.Vec{X: 100, Y: 100}, Size: 30}

	in := core.NewInputFrame()
	in.Stick = core.Vec{X: 0.1}
	m.move(p, in, 0)
	if p.Pos.X != 100 {
		t.Errorf("Stick inside the deadzone moved the player to %v", p.Pos.X)
	}

	in.Stick = core.Vec{X: 1}
	m.move(p, in, 0)
	if !approx(p.Pos.X, 100+m.speed) {
		t.Errorf("X = %v, want %v at full deflection", p.Pos.X, 100+m.speed)
	}
}

func TestMovingTargetsBounce(t *testing.T) {
	targets := []Target{{ID: 1, Kind: KindMoving, Pos: core.Vec{X: 16, Y: 300}, Size: 30, Velocity: core.Vec{X: -2}}}

	moveTargets(targets, core.Vec{X: 400, Y: 300}, testField, 1)

	if targets[0].Velocity.X != 2 {
		t.Errorf("Velocity.X = %v, want reflected 2", targets[0].Velocity.X)
	}
	if targets[0].Pos.X != 15 {
		t.Errorf("X = %v, want clamped 15", targets[0].Pos.X)
	}
}

func TestFleeAndCalm(t *testing.T) {
	base := Target{ID: 1, Kind: KindFlee, Pos: core.Vec{X: 300, Y: 300}, Size: 30, FleeSpeed: 2, DetectionRadius: 120}

	targets := []Target{base}
	moveTargets(targets, core.Vec{X: 250, Y: 300}, testField, 1)
	if !approx(targets[0].Pos.X, 302) {
		t.Errorf("X = %v, want 302", targets[0].Pos.X)
	}

	targets = []Target{base}
	moveTargets(targets, core.Vec{X: 250, Y: 300}, testField, 0.5)
	if !approx(targets[0].Pos.X, 301) {
		t.Errorf("Calm X = %v, want 301", targets[0].Pos.X)
	}

	targets = []Target{base}
	moveTargets(targets, core.Vec{X: 100, Y: 300}, testField, 1)
	if targets[0].Pos.X != 300 {
		t.Errorf("Target outside detection radius moved to %v", targets[0].Pos.X)
	}
}
