package session

import (
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"collected", TargetCollected{Remaining: 3}, "Target collected. 3 targets left."},
		{"last one left", TargetCollected{Remaining: 1}, "Target collected. 1 target left."},
		{"bonus", BonusCollected{Seconds: 5}, "Bonus! 5 seconds off."},
		{"hazard", HazardHit{Seconds: 2.5}, "Hazard! 2.5 second penalty."},
		{"boundary", BoundaryHit{}, "Edge of field."},
		{"completed", SessionCompleted{Record: Record{TotalTime: 12340 * time.Millisecond}}, "All targets collected in 12.34s."},
		{"dwell is silent", DwellProgress{TargetID: 1, Progress: 0.5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.event); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
