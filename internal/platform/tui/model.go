package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/core"
	"github.com/vovakirdan/tui-targets/internal/replay"
	"github.com/vovakirdan/tui-targets/internal/session"
	"github.com/vovakirdan/tui-targets/internal/storage"
)

// flashTicks is how long the field border flashes after a visual cue.
const flashTicks = 12

// Env carries the collaborators shared by every screen.
type Env struct {
	Trainer config.TrainerConfig
	Store   *storage.Store // May be nil; history is then disabled
	Logger  *log.Logger
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

func (e Env) tickRate() int {
	if e.Trainer.Session.TickRate <= 0 {
		return 60
	}
	return e.Trainer.Session.TickRate
}

// announcer turns session events into the status line and visual cues.
type announcer struct {
	visual bool
	last   string
	flash  int
	logger *log.Logger
}

func (a *announcer) listen(e session.Event) {
	if text := session.Describe(e); text != "" {
		a.last = text
	}
	switch e.(type) {
	case session.BoundaryHit, session.HazardHit:
		if a.visual {
			a.flash = flashTicks
		}
	case session.SessionCompleted:
		a.logger.Info("session completed", "status", a.last)
	}
}

// GameModel runs one training session with back-to-menu capability.
type GameModel struct {
	env        Env
	cfg        replay.Config
	sess       *session.Session
	screen     *core.Screen
	viewport   Viewport
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	announcer  *announcer
	quitting   bool
	backToMenu bool
	standalone bool // Back quits instead of returning to a menu
}

// NewGameModel creates a model for cfg sized to a width x height terminal.
func NewGameModel(cfg replay.Config, env Env, width, height int) GameModel {
	m := GameModel{
		env:        env,
		cfg:        cfg,
		screen:     core.NewScreen(width, height),
		viewport:   NewViewport(width, height, env.Trainer.Field),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		announcer:  &announcer{visual: cfg.Feedback.Visual, logger: env.logger()},
	}
	m.sess = m.newSession()
	return m
}

func (m GameModel) newSession() *session.Session {
	opts := session.Options{
		Trainer:  m.env.Trainer,
		Field:    m.viewport.Field(),
		Listener: m.announcer.listen,
		Logger:   m.env.logger(),
	}
	if m.env.Store != nil {
		opts.Saver = m.env.Store
	}
	return session.New(m.cfg, opts)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.env.tickRate())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	phase := m.sess.Phase()
	switch {
	case m.inputFrame.Has(core.ActionBack) && phase != session.PhasePlaying:
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	case m.inputFrame.Has(core.ActionConfirm) && phase == session.PhaseReady:
		//nolint:errcheck // Phase checked above
		m.sess.Start()
		m.announcer.last = "Go!"
	case m.inputFrame.Has(core.ActionRestart) && phase == session.PhaseCompleted:
		m.sess.Restart()
		m.announcer.last = "Same code, same layout."
	}
	return m, nil
}

// handleMouse feeds the pointer position into the next frame.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion {
		p := m.viewport.Unit(msg.X, msg.Y)
		m.inputFrame.Pointer = &p
	}
	return m, nil
}

// handleResize rebuilds the layout before the session starts and clamps it
// afterwards.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.viewport = NewViewport(msg.Width, msg.Height, m.env.Trainer.Field)
	if m.sess.Phase() == session.PhaseReady {
		m.sess = m.newSession()
	} else {
		m.sess.Resize(m.viewport.Field())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Terminals have no analog stick; held direction keys stand in for one.
	if m.cfg.InputMethod == replay.InputJoystick {
		m.inputFrame.Stick = m.inputFrame.Direction()
	}

	m.sess.Tick(m.inputFrame)

	if m.announcer.flash > 0 {
		m.announcer.flash--
	}
	m.inputFrame.Clear()
	m.inputFrame.Stick = core.Vec{}
	return m, tickCmd(m.env.tickRate())
}

// View renders the field.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	DrawSession(m.screen, m.sess, m.viewport, m.announcer.last, m.announcer.flash > 0)
	return RenderScreen(m.screen)
}

// Session returns the running session.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single session for cfg in the local terminal.
func Run(cfg replay.Config, env Env, width, height int) error {
	model := NewGameModel(cfg, env, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
