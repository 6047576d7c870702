package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/core"
	"github.com/vovakirdan/tui-targets/internal/replay"
	"github.com/vovakirdan/tui-targets/internal/session"
)

// statusRows is the number of terminal rows below the field.
const statusRows = 1

// Viewport maps field units onto terminal cells.
type Viewport struct {
	Cols  int
	Rows  int
	CellW float64
	CellH float64
}

// NewViewport sizes a viewport for a terminal, reserving the status line.
func NewViewport(width, height int, fc config.FieldConfig) Viewport {
	return Viewport{
		Cols:  max(1, width),
		Rows:  max(1, height-statusRows),
		CellW: fc.CellWidth,
		CellH: fc.CellHeight,
	}
}

// Field returns the field size in units.
func (v Viewport) Field() session.Field {
	return session.Field{
		Width:  float64(v.Cols) * v.CellW,
		Height: float64(v.Rows) * v.CellH,
	}
}

// Cell returns the column and row containing p.
func (v Viewport) Cell(p core.Vec) (col, row int) {
	return int(math.Floor(p.X / v.CellW)), int(math.Floor(p.Y / v.CellH))
}

// Unit returns the field position at the center of a cell.
func (v Viewport) Unit(col, row int) core.Vec {
	return core.Vec{
		X: (float64(col) + 0.5) * v.CellW,
		Y: (float64(row) + 0.5) * v.CellH,
	}
}

var kindGlyphs = map[session.Kind]rune{
	session.KindStatic: 'O',
	session.KindMoving: '@',
	session.KindFlee:   '*',
	session.KindBonus:  '+',
	session.KindHazard: 'X',
}

// DrawSession renders the field, entities, HUD, and status line.
func DrawSession(dst *core.Screen, s *session.Session, vp Viewport, status string, flash bool) {
	dst.Clear()

	if flash {
		dst.DrawBox(core.NewRect(0, 0, vp.Cols, vp.Rows), core.ColorWarning)
	}

	player := s.Player()
	if s.Config().PlayerTrail != replay.TrailOff {
		for _, p := range player.Trail {
			col, row := vp.Cell(p)
			dst.SetColored(col, row, '.', core.ColorTrail)
		}
	}

	for _, t := range s.Targets() {
		drawTarget(dst, vp, t, s.DwellProgress(t.ID))
	}

	box := player.Box()
	minCol, minRow := vp.Cell(box.Min)
	maxCol, maxRow := vp.Cell(box.Max)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if box.Contains(vp.Unit(col, row)) {
				dst.SetColored(col, row, '#', core.ColorPlayer)
			}
		}
	}
	col, row := vp.Cell(player.Pos)
	dst.SetColored(col, row, '#', core.ColorPlayer)

	drawHUD(dst, s)
	drawBanner(dst, s, vp)

	dst.DrawTextColored(0, vp.Rows, status, core.ColorStatus)
}

// drawTarget fills the cells whose centers lie inside the target circle.
// The center cell is always drawn so small targets stay visible.
func drawTarget(dst *core.Screen, vp Viewport, t session.Target, progress float64) {
	glyph := kindGlyphs[t.Kind]
	r := t.Radius()
	minCol, minRow := vp.Cell(core.Vec{X: t.Pos.X - r, Y: t.Pos.Y - r})
	maxCol, maxRow := vp.Cell(core.Vec{X: t.Pos.X + r, Y: t.Pos.Y + r})
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if core.Dist(vp.Unit(col, row), t.Pos) <= r {
				dst.SetColored(col, row, glyph, t.Color)
			}
		}
	}

	col, row := vp.Cell(t.Pos)
	if progress > 0 {
		digit := rune('0' + core.Clamp(int(progress*10), 0, 9))
		dst.SetColored(col, row, digit, core.ColorDwell)
		return
	}
	dst.SetColored(col, row, glyph, t.Color)
}

// drawHUD writes the timer and progress into the top-left overlay area,
// which placement keeps free of targets.
func drawHUD(dst *core.Screen, s *session.Session) {
	st := s.State()
	dst.DrawTextColored(1, 0, session.FormatElapsed(s.Elapsed()), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("%d/%d", st.CoreTargetsCollected, st.TotalCoreTargets), core.ColorCounter)
	if st.HazardTargetsHit > 0 {
		dst.DrawTextColored(1, 2, fmt.Sprintf("hits %d", st.HazardTargetsHit), core.ColorWarning)
	}
}

func drawBanner(dst *core.Screen, s *session.Session, vp Viewport) {
	mid := vp.Rows / 2
	switch s.Phase() {
	case session.PhaseReady:
		dst.DrawTextCentered(mid, "Press Enter to start")
		dst.DrawTextCentered(mid+1, replay.Pretty(s.Config().Seed))
	case session.PhasePaused:
		dst.DrawTextCentered(mid, "PAUSED  P: resume  B: menu")
	case session.PhaseCompleted:
		dst.DrawTextCentered(mid, "Done in "+session.FormatElapsed(s.State().TotalTime()))
		dst.DrawTextCentered(mid+1, replay.Pretty(s.Config().Seed))
		dst.DrawTextCentered(mid+2, "R: replay  B: menu  Q: quit")
	case session.PhasePlaying:
	}
}
