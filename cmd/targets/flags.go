package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/registry"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

// authorFlags are the config-authoring flags shared by play and code encode.
type authorFlags struct {
	preset      string
	counts      string
	size        string
	speed       int
	trail       string
	input       string
	buffer      int
	boundaries  string
	audio       bool
	visual      bool
	haptic      bool
	calm        bool
	dwell       bool
	dwellTime   int
	deadzone    int
	sensitivity string
}

func (f *authorFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.preset, "preset", "", "Start from a preset (see 'targets presets')")
	fs.StringVar(&f.counts, "counts", "", "Target counts: stationary,moving,flee,bonus,hazard (e.g. 3,2,1,1,2)")
	fs.StringVar(&f.size, "size", "", "Target size: small, medium, large, extra-large")
	fs.IntVar(&f.speed, "speed", 0, "Player speed 1-5")
	fs.StringVar(&f.trail, "trail", "", "Player trail: short, long, off")
	fs.StringVar(&f.input, "input", "", "Input method: discrete, continuous, mouse, joystick, cursor")
	fs.IntVar(&f.buffer, "buffer", 0, "Input buffer in milliseconds (0-900)")
	fs.StringVar(&f.boundaries, "boundaries", "", "Field edges: none, visual, hard")
	fs.BoolVar(&f.audio, "audio", true, "Audio feedback")
	fs.BoolVar(&f.visual, "visual", true, "Visual feedback (edge and hazard flashes)")
	fs.BoolVar(&f.haptic, "haptic", false, "Haptic feedback")
	fs.BoolVar(&f.calm, "calm", false, "Calm mode: slower moving and fleeing targets")
	fs.BoolVar(&f.dwell, "dwell", false, "Dwell mode: hold on a target to collect it")
	fs.IntVar(&f.dwellTime, "dwell-time", 0, "Dwell time in milliseconds (500-5000)")
	fs.IntVar(&f.deadzone, "deadzone", 0, "Joystick deadzone percent (0-50)")
	fs.StringVar(&f.sensitivity, "sensitivity", "", "Joystick sensitivity: low, medium, high")
}

// build starts from the preset (or defaults) and applies only the flags
// the user actually set.
func (f *authorFlags) build(cmd *cobra.Command) (replay.Config, error) {
	cfg := replay.DefaultConfig()
	if f.preset != "" {
		p, err := registry.Get(f.preset)
		if err != nil {
			return replay.Config{}, err
		}
		cfg = p.Config
	}

	changed := cmd.Flags().Changed
	if changed("counts") {
		counts, err := parseCounts(f.counts)
		if err != nil {
			return replay.Config{}, err
		}
		cfg.Targets = counts
	}
	if changed("size") {
		cfg.TargetSize = replay.Size(f.size)
	}
	if changed("speed") {
		cfg.PlayerSpeed = f.speed
	}
	if changed("trail") {
		cfg.PlayerTrail = replay.Trail(f.trail)
	}
	if changed("input") {
		cfg.InputMethod = replay.InputMethod(f.input)
	}
	if changed("buffer") {
		cfg.InputBuffer = f.buffer
	}
	if changed("boundaries") {
		cfg.Boundaries = replay.Boundaries(f.boundaries)
	}
	if changed("audio") {
		cfg.Feedback.Audio = f.audio
	}
	if changed("visual") {
		cfg.Feedback.Visual = f.visual
	}
	if changed("haptic") {
		cfg.Feedback.Haptic = f.haptic
	}
	if changed("calm") {
		cfg.CalmMode = f.calm
	}
	if changed("dwell") {
		cfg.DwellMode = f.dwell
	}
	if changed("dwell-time") {
		cfg.DwellTime = f.dwellTime
	}
	if changed("deadzone") {
		cfg.JoystickDeadzone = f.deadzone
	}
	if changed("sensitivity") {
		cfg.JoystickSensitivity = replay.Sensitivity(f.sensitivity)
	}
	return cfg, nil
}

// parseCounts reads "s,m,f,b,h". Missing trailing kinds are zero.
func parseCounts(s string) (replay.TargetCounts, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 5 {
		return replay.TargetCounts{}, fmt.Errorf("invalid --counts %q: at most 5 values", s)
	}
	var n [5]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 9 {
			return replay.TargetCounts{}, fmt.Errorf("invalid --counts %q: each value must be 0-9", s)
		}
		n[i] = v
	}
	return replay.TargetCounts{
		Stationary: n[0],
		Moving:     n[1],
		Flee:       n[2],
		Bonus:      n[3],
		Hazard:     n[4],
	}, nil
}
