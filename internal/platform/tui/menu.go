package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmezhov/tictac-tui/internal/core"
)

// Selection holds the user's choice from the main menu.
type Selection struct {
	GameID     string // Variant to play; empty when another option was chosen
	Scoreboard bool   // True when the user picked match history
}

// menuEntry is one selectable line in the main menu.
type menuEntry struct {
	label      string
	gameID     string
	scoreboard bool
}

// MenuModel lets users choose the game mode or open the match history.
type MenuModel struct {
	entries   []menuEntry
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *Selection
	quitting  bool
}

// NewMenuModel creates the main menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		entries: []menuEntry{
			{label: "Play vs Computer", gameID: "tictac"},
			{label: "Play vs Human", gameID: "tictac_2p"},
			{label: "Match history", scoreboard: true},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		entry := m.entries[m.cursor]
		m.selection = &Selection{
			GameID:     entry.gameID,
			Scoreboard: entry.scoreboard,
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText("T I C - T A C - T O E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("up/down move · enter select · q quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult is returned by RunMenu.
type MenuResult struct {
	Selection *Selection // Nil when the user quit
	Config    core.RuntimeConfig
}

// RunMenu shows the main menu and returns the user's selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg}, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height
	return MenuResult{Selection: m.selection, Config: cfg}, nil
}
