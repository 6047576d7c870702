package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-targets/internal/registry"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

// MenuItem is one selectable entry: a preset, or the replay code prompt.
type MenuItem struct {
	Title       string
	Description string
	Preset      *registry.Preset // Nil for the code prompt
}

// MenuModel is the Bubble Tea model for the session picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	codeInput textinput.Model
	editing   bool
	err       string
	quitting  bool
	history   bool
	selected  *replay.Config
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	presets := registry.List()
	items := make([]MenuItem, 0, len(presets)+1)
	for i := range presets {
		p := presets[i]
		items = append(items, MenuItem{Title: p.Title, Description: p.Description, Preset: &p})
	}
	items = append(items, MenuItem{Title: "Replay a code", Description: "Enter a shared replay code"})

	input := textinput.New()
	input.Prompt = "Code: "
	input.Placeholder = "BLUE-CIRCLE-500001300601100012121"
	input.CharLimit = 64

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		codeInput: input,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleCodeKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionHistory:
		m.history = true
		return m, tea.Quit

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Preset == nil {
			m.editing = true
			m.err = ""
			m.codeInput.SetValue("")
			return m, m.codeInput.Focus()
		}
		cfg, err := replay.Seal(item.Preset.Config)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.selected = &cfg
		return m, tea.Quit

	case MenuActionNone, MenuActionBack:
	}

	return m, nil
}

// handleCodeKey routes keys to the code input until Enter or Esc.
func (m MenuModel) handleCodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.editing = false
		m.codeInput.Blur()
		return m, nil

	case tea.KeyEnter:
		cfg, err := replay.Decode(m.codeInput.Value())
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.editing = false
		m.codeInput.Blur()
		m.selected = &cfg
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T A R G E T S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a preset or replay a code", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-14s %s", item.Title, dimStyle.Render(item.Description))
		if i == m.cursor {
			line = pickStyle.Render(fmt.Sprintf("> %-14s", item.Title)) + " " + item.Description
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(centerText(m.codeInput.View(), m.width))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(centerText(errorStyle.Render(m.err), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit"
	if m.editing {
		controls = "Enter: Play code  |  Esc: Cancel"
	}
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen session config, or nil if none was chosen.
func (m MenuModel) Selected() *replay.Config {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.history
}
