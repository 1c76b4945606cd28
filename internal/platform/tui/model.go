package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmezhov/tictac-tui/internal/core"
	"github.com/kmezhov/tictac-tui/internal/games/tictac"
	"github.com/kmezhov/tictac-tui/internal/registry"
	"github.com/kmezhov/tictac-tui/internal/storage"
)

// outcomeSource is implemented by games that produce match outcomes for
// persistence.
type outcomeSource interface {
	ConsumeOutcomes() []tictac.Outcome
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board is small, so
// the match survives a resize; only the screen buffer adjusts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.recordOutcomes()

	if m.gameState.Done {
		m.quitting = true
		return m, tea.Quit
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordOutcomes persists any matches that finished this tick.
func (m Model) recordOutcomes() {
	src, ok := m.game.(outcomeSource)
	if !ok || m.store == nil {
		return
	}

	for _, out := range src.ConsumeOutcomes() {
		winner := storage.WinnerDraw
		if !out.IsDraw {
			winner = out.Winner.String()
		}
		duration := 0
		if m.config.TickRate > 0 {
			duration = int(out.Ticks) / m.config.TickRate
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.RecordMatch(storage.MatchEntry{
			GameID:   m.game.ID(),
			Mode:     out.Mode.String(),
			Winner:   winner,
			Moves:    out.Moves,
			Duration: duration,
		})
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
