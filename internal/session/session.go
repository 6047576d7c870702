package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/core"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

// Phase transition errors.
var (
	ErrNotReady   = errors.New("session: not ready")
	ErrNotPlaying = errors.New("session: not playing")
	ErrNotPaused  = errors.New("session: not paused")
	ErrCompleted  = errors.New("session: already completed")
)

// Clock supplies wall time. Tests inject a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a session's collaborators.
type Options struct {
	Trainer  config.TrainerConfig
	Field    Field
	Clock    Clock       // Defaults to the system clock
	Listener Listener    // Optional
	Saver    RecordSaver // Optional
	Logger   *log.Logger // Optional
}

// StepResult is returned by Tick.
type StepResult struct {
	Phase  Phase
	Events []Event
}

// Session is one training run, from placement to completion.
type Session struct {
	cfg     replay.Config
	trainer config.TrainerConfig
	field   Field
	clock   Clock
	listen  Listener
	saver   RecordSaver
	logger  *log.Logger

	phase      Phase
	state      State
	player     Player
	targets    []Target
	collisions *Collisions
	mover      *mover
	seeded     bool

	tick     int64
	tickDur  time.Duration
	pausedAt time.Time
	record   *Record
}

// New places the field for cfg and returns a session in PhaseReady.
func New(cfg replay.Config, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	tickRate := opts.Trainer.Session.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	s := &Session{
		cfg:     cfg,
		trainer: opts.Trainer,
		field:   opts.Field,
		clock:   opts.Clock,
		listen:  opts.Listener,
		saver:   opts.Saver,
		logger:  opts.Logger,
		tickDur: time.Second / time.Duration(tickRate),
	}
	s.layout()
	return s
}

// layout runs placement and resets all per-run state.
func (s *Session) layout() {
	layout := Place(s.cfg, s.field, s.trainer)
	if layout.Fallbacks > 0 {
		s.logger.Debug("placement fell back after exhausting attempts",
			"code", s.cfg.Seed, "targets", layout.Fallbacks)
	}
	if !layout.Seeded {
		s.logger.Warn("session has no replay code; layout is not reproducible")
	}

	size := s.trainer.SizeFor(s.cfg.TargetSize)
	s.player = Player{Pos: layout.Player, Size: size}
	s.targets = layout.Targets
	s.seeded = layout.Seeded
	s.mover = newMover(s.cfg, s.trainer, s.field, size)
	s.collisions = NewCollisions(DwellSettings{
		Enabled: s.cfg.DwellMode,
		Time:    time.Duration(s.cfg.DwellTime) * time.Millisecond,
		Tick:    s.tickDur,
	})
	s.phase = PhaseReady
	s.tick = 0
	s.pausedAt = time.Time{}
	s.record = nil
	s.state = State{
		Seed:             s.cfg.Seed,
		TotalTargets:     len(layout.Targets),
		TotalCoreTargets: layout.TotalCore(),
	}
}

// Restart lays the same code out again and returns to PhaseReady.
func (s *Session) Restart() {
	s.layout()
}

// Start transitions Ready -> Playing and starts the clock.
func (s *Session) Start() error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	s.phase = PhasePlaying
	s.state.StartTime = s.clock.Now()
	return nil
}

// Pause freezes the clock.
func (s *Session) Pause() error {
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}
	s.phase = PhasePaused
	s.pausedAt = s.clock.Now()
	return nil
}

// Resume restarts the clock, accumulating the pause into PausedTime.
func (s *Session) Resume() error {
	if s.phase != PhasePaused {
		return ErrNotPaused
	}
	s.state.PausedTime += s.clock.Now().Sub(s.pausedAt)
	s.pausedAt = time.Time{}
	s.phase = PhasePlaying
	return nil
}

// TogglePause pauses a playing session or resumes a paused one.
func (s *Session) TogglePause() error {
	if s.phase == PhasePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Tick advances the session by one frame: input, movement, target motion,
// collisions. Ticks outside PhasePlaying only handle pause toggling.
func (s *Session) Tick(in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) && (s.phase == PhasePlaying || s.phase == PhasePaused) {
		_ = s.TogglePause()
	}
	if s.phase != PhasePlaying {
		return StepResult{Phase: s.phase}
	}

	s.tick++
	var events []Event

	now := time.Duration(s.tick) * s.tickDur
	if s.mover.move(&s.player, in, now) {
		events = append(events, BoundaryHit{Pos: s.player.Pos})
	}

	calm := 1.0
	if s.cfg.CalmMode {
		calm = s.trainer.Targets.CalmFactor
	}
	moveTargets(s.targets, s.player.Pos, s.field, calm)

	live, hits, done := s.collisions.Step(s.player, s.targets, &s.state)
	s.targets = live
	events = append(events, hits...)

	if done {
		events = append(events, s.complete())
	}

	if s.listen != nil {
		for _, e := range events {
			s.listen(e)
		}
	}
	return StepResult{Phase: s.phase, Events: events}
}

// complete finalizes the state and hands the record to the saver.
func (s *Session) complete() Event {
	s.phase = PhaseCompleted
	s.state.EndTime = s.clock.Now()
	s.state.Completed = true

	rec := newRecord(s.cfg, s.state)
	s.record = &rec
	s.logger.Debug("session completed", "code", s.cfg.Seed, "time", FormatElapsed(rec.TotalTime))

	if s.saver != nil && s.seeded {
		if err := s.saver.SaveRecord(rec); err != nil {
			s.logger.Warn("could not save session record", "error", err)
		}
	}
	return SessionCompleted{Record: rec}
}

// Resize updates the field bounds and pulls the player and targets back
// inside. This is not part of the replayable layout.
func (s *Session) Resize(field Field) {
	s.field = field
	s.mover.field = field
	s.player.Pos = s.mover.clampToField(s.player.Pos, s.player.Size)
	for i := range s.targets {
		s.targets[i].Pos = s.mover.clampToField(s.targets[i].Pos, s.targets[i].Size)
	}
}

// Elapsed returns the live elapsed time; it may be negative after bonuses.
func (s *Session) Elapsed() time.Duration {
	now := s.clock.Now()
	if s.phase == PhasePaused {
		now = s.pausedAt
	}
	return s.state.Elapsed(now)
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// State returns a copy of the scoring and timing state.
func (s *Session) State() State { return s.state }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Targets returns the live targets. The slice must not be modified.
func (s *Session) Targets() []Target { return s.targets }

// Config returns the session configuration.
func (s *Session) Config() replay.Config { return s.cfg }

// Field returns the current field bounds.
func (s *Session) Field() Field { return s.field }

// DwellProgress returns dwell progress for a live target in [0, 1].
func (s *Session) DwellProgress(id int) float64 { return s.collisions.Progress(id) }

// Seeded reports whether the layout is reproducible from the code.
func (s *Session) Seeded() bool { return s.seeded }

// Record returns the finished record, or nil before completion.
func (s *Session) Record() *Record { return s.record }
