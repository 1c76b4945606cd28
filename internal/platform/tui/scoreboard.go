package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmezhov/tictac-tui/internal/registry"
	"github.com/kmezhov/tictac-tui/internal/storage"
)

// Scoreboard layout constants
const (
	maxMatches = 100 // Max matches to load per variant
)

// ScoreboardKeyMap defines the key bindings for the match history screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the match history screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	sbStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NewScoreboardModel creates a new match history model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.buildTable()
	m.reload()
	return m
}

// buildTable constructs the table widget.
func (m ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Played", Width: 17},
		{Title: "Mode", Width: 13},
		{Title: "Winner", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 6},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	return t
}

// currentGameID returns the variant currently shown.
func (m ScoreboardModel) currentGameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload fetches matches and stats for the current variant.
func (m *ScoreboardModel) reload() {
	gameID := m.currentGameID()
	if gameID == "" || m.store == nil {
		m.table.SetRows(nil)
		m.stats = nil
		return
	}

	matches, err := m.store.MatchesByGame(gameID, maxMatches)
	if err != nil {
		m.table.SetRows(nil)
		m.stats = nil
		return
	}

	rows := make([]table.Row, 0, len(matches))
	for _, e := range matches {
		rows = append(rows, table.Row{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Mode,
			e.Winner,
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%ds", e.Duration),
		})
	}
	m.table.SetRows(rows)

	// Stats failure just blanks the header line
	m.stats, _ = m.store.Stats(gameID)
}

// Init initializes the model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// statsLine formats the aggregate header for the current variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Played == 0 {
		return "No matches recorded yet."
	}
	return fmt.Sprintf("Played %d · X wins %d · O wins %d · Draws %d · Avg moves %.1f",
		m.stats.Played, m.stats.XWins, m.stats.OWins, m.stats.Draws, m.stats.AvgMoves)
}

// View renders the match history.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "Match History"
	if len(m.games) > 0 {
		title = fmt.Sprintf("Match History — %s", m.games[m.gameCursor].Title)
	}

	b.WriteString(sbTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(sbStatsStyle.Render(m.statsLine()))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunScoreboard shows the match history screen.
// Returns true if the user wants to go back (rather than quit).
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := final.(ScoreboardModel); ok {
		return m.goingBack, nil
	}
	return false, nil
}
