package main

import (
	"testing"

	"github.com/vovakirdan/tui-targets/internal/replay"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    replay.Version
		wantErr bool
	}{
		{"legacy", replay.VersionLegacy, false},
		{"1", replay.Version1, false},
		{"v1", replay.Version1, false},
		{"2", replay.Version2, false},
		{"V2", replay.Version2, false},
		{"3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
