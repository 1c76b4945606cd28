package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmezhov/tictac-tui/internal/core"
	"github.com/kmezhov/tictac-tui/internal/registry"
	"github.com/kmezhov/tictac-tui/internal/storage"
)

// sessionState tracks which screen an SSH session is on.
type sessionState int

const (
	sessionMenu sessionState = iota
	sessionGame
	sessionScores
)

// SessionModel drives a full menu/game/history flow inside a single
// Bubble Tea program, as required for SSH sessions where each screen
// cannot run its own program.
type SessionModel struct {
	state  sessionState
	store  *storage.Store
	config core.RuntimeConfig
	user   string

	menu   MenuModel
	game   Model
	scores ScoreboardModel
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, user string) SessionModel {
	return SessionModel{
		state:  sessionMenu,
		store:  store,
		config: cfg,
		user:   user,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	switch m.state {
	case sessionMenu:
		return m.updateMenu(msg)
	case sessionGame:
		return m.updateGame(msg)
	case sessionScores:
		return m.updateScores(msg)
	}
	return m, nil
}

// updateMenu feeds the menu and handles a selection.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, _ := m.menu.Update(msg)
	menu, ok := updated.(MenuModel)
	if !ok {
		return m, nil
	}
	m.menu = menu

	if menu.quitting {
		return m, tea.Quit
	}

	if sel := menu.selection; sel != nil {
		m.menu.selection = nil

		if sel.Scoreboard {
			m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.state = sessionScores
			return m, nil
		}

		game, err := registry.Create(sel.GameID)
		if err != nil {
			return m, nil
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.game = NewModel(game, m.store, cfg)
		m.state = sessionGame
		return m, m.game.Init()
	}

	return m, nil
}

// updateGame feeds the game runner; a finished game returns to the menu
// instead of closing the session.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	game, ok := updated.(Model)
	if !ok {
		return m, nil
	}
	m.game = game

	if game.quitting {
		m.state = sessionMenu
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	return m, cmd
}

// updateScores feeds the history screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	scores, ok := updated.(ScoreboardModel)
	if !ok {
		return m, nil
	}
	m.scores = scores

	if scores.quitting {
		return m, tea.Quit
	}
	if scores.goingBack {
		m.state = sessionMenu
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.state {
	case sessionMenu:
		return m.menu.View()
	case sessionGame:
		return m.game.View()
	case sessionScores:
		return m.scores.View()
	}
	return ""
}
