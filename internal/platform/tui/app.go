package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-targets/internal/replay"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenHistory
)

// AppModel manages the full flow: menu -> session -> menu, plus history.
// It is the top-level model for `targets menu` and SSH connections.
type AppModel struct {
	env      Env
	width    int
	height   int
	current  screenKind
	menu     MenuModel
	game     GameModel
	history  HistoryModel
	quitting bool
}

// NewAppModel creates the top-level model.
func NewAppModel(env Env, width, height int) AppModel {
	return AppModel{
		env:    env,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.env.Store, m.width, m.height)
		m.current = screenHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		return m.startGame(*m.menu.Selected())
	}

	return m, cmd
}

// updateHistory handles updates when on the history screen.
func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.Replay() != nil:
		return m.startGame(*m.history.Replay())
	case m.history.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

// updateGame handles updates when a session is on screen.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m AppModel) startGame(cfg replay.Config) (tea.Model, tea.Cmd) {
	m.env.logger().Info("session selected", "code", cfg.Seed)
	m.game = NewGameModel(cfg, m.env, m.width, m.height)
	m.current = screenGame
	return m, m.game.Init()
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.width, m.height)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven app in the local terminal.
func RunApp(env Env, width, height int) error {
	p := tea.NewProgram(
		NewAppModel(env, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
