package session

import "github.com/vovakirdan/tui-targets/internal/core"

// Player is the square marker the user steers.
type Player struct {
	Pos  core.Vec // Center, field units
	Size float64  // Side length; always equal to the target size

	// Trail holds past positions, newest first. Only the renderer reads it.
	Trail []core.Vec

	// ContinuousDir is the held direction in continuous mode, nil when still.
	ContinuousDir *core.Vec

	// Dest is where pointer and cursor modes are heading, nil when idle.
	Dest *core.Vec
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	half := p.Size / 2
	return core.Box{
		Min: core.Vec{X: p.Pos.X - half, Y: p.Pos.Y - half},
		Max: core.Vec{X: p.Pos.X + half, Y: p.Pos.Y + half},
	}
}

// pushTrail records a previous position, keeping at most limit entries.
func (p *Player) pushTrail(prev core.Vec, limit int) {
	if limit <= 0 {
		p.Trail = p.Trail[:0]
		return
	}
	p.Trail = append(p.Trail, core.Vec{})
	copy(p.Trail[1:], p.Trail)
	p.Trail[0] = prev
	if len(p.Trail) > limit {
		p.Trail = p.Trail[:limit]
	}
}
