package session

import (
	"fmt"
	"time"
)

// Elapsed returns the live session time at now:
//
//	(end or now) - start - paused + adjustments
//
// Bonuses can make it negative; TotalTime is the clamped, final view.
func (s State) Elapsed(now time.Time) time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	end := now
	if !s.EndTime.IsZero() {
		end = s.EndTime
	}
	adj := time.Duration(s.TimeAdjustments * float64(time.Second))
	return end.Sub(s.StartTime) - s.PausedTime + adj
}

// TotalTime returns the finalized elapsed time, never negative.
func (s State) TotalTime() time.Duration {
	return max(0, s.Elapsed(s.EndTime))
}

// FormatElapsed renders d as M:SS.cc, or S.ccs under a minute.
// Negative values get a leading minus sign.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		return "-" + FormatElapsed(-d)
	}
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, centis)
	}
	return fmt.Sprintf("%d.%02ds", seconds, centis)
}
