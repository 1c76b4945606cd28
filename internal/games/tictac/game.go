// Package tictac implements tic-tac-toe: the board engine, the random
// computer opponent, and the session logic that drives a match.
package tictac

import (
	"math/rand"

	"github.com/kmezhov/tictac-tui/internal/config"
	"github.com/kmezhov/tictac-tui/internal/core"
	"github.com/kmezhov/tictac-tui/internal/registry"
)

// Outcome records one finished match for persistence.
type Outcome struct {
	Winner Mark // Zero when the match was a draw
	IsDraw bool
	Mode   Mode
	Moves  int
	Ticks  uint64 // Match length in simulation ticks
}

// Game wraps Engine with session concerns: cursor movement, the delayed
// computer move, the result banner, and the auto-reset that follows a
// terminal result. It implements registry.Game.
type Game struct {
	startMode Mode
	engine    *Engine
	cfg       config.GameConfig
	tick      uint64
	tickRate  int

	cursor int // Currently highlighted cell

	// Pending computer move. A move is scheduled by setting pendingIn to
	// the delay in ticks; generation guards against a reset or mode
	// change racing with the scheduled move.
	pendingIn  int
	pendingGen uint64
	generation uint64

	// Terminal result banner countdown; the board resets when it expires.
	bannerTicks int
	lastResult  Result

	moves     int    // Moves applied in the current match
	matchTick uint64 // Tick at which the current match started

	finished []Outcome // Completed matches not yet consumed by the platform

	paused bool
	done   bool
}

// Package-level variables for config, set by the CLI before creation.
var (
	configPath    string
	delayOverride = -1
)

// SetConfigPath sets a custom YAML config path. Empty means the default
// search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetComputerDelay overrides the configured computer-move delay in
// milliseconds. Negative values restore the config value.
func SetComputerDelay(ms int) {
	delayOverride = ms
}

// New creates a game against the random computer opponent.
func New() *Game {
	return &Game{startMode: HumanVsComputer}
}

// NewTwoPlayer creates a local two-player game.
func NewTwoPlayer() *Game {
	return &Game{startMode: HumanVsHuman}
}

func init() {
	registry.Register("tictac", func() registry.Game {
		return New()
	})
	registry.Register("tictac_2p", func() registry.Game {
		return NewTwoPlayer()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.startMode == HumanVsHuman {
		return "tictac_2p"
	}
	return "tictac"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.startMode == HumanVsHuman {
		return "Tic-Tac-Toe (2 Players)"
	}
	return "Tic-Tac-Toe (vs Computer)"
}

// Reset initializes/restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.Load(configPath)
	if err != nil {
		loaded = config.Default()
	}
	g.cfg = loaded
	if delayOverride >= 0 {
		g.cfg.Computer.DelayMs = delayOverride
	}

	g.engine = NewEngine(g.startMode, rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.cursor = 4 // Start on the center cell
	g.generation++
	g.pendingIn = 0
	g.bannerTicks = 0
	g.moves = 0
	g.matchTick = 0
	g.finished = nil
	g.paused = false
	g.done = false
}

// Engine exposes the underlying board engine for rendering and tests.
func (g *Game) Engine() *Engine {
	return g.engine
}

// ticksFor converts a millisecond duration to simulation ticks,
// always at least one tick.
func (g *Game) ticksFor(ms int) int {
	ticks := ms * g.tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionBack) || in.Has(core.ActionQuit) {
		g.done = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionToggleMode) {
		g.toggleMode()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionReset) {
		g.resetMatch()
		return core.StepResult{State: g.State()}
	}

	// The banner period: the finished board stays visible briefly, then
	// the match resets. Move input is not accepted meanwhile.
	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.resetMatch()
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	// A scheduled computer move fires only if no reset or mode change
	// happened since it was scheduled.
	if g.pendingIn > 0 {
		g.pendingIn--
		if g.pendingIn == 0 && g.pendingGen == g.generation {
			g.playComputerMove()
		}
		return core.StepResult{State: g.State()}
	}

	if index, ok := g.selectedCell(in); ok {
		g.playHumanMove(index)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies cursor navigation from the input frame.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.Has(core.ActionUp):
		row = core.Clamp(row-1, 0, 2)
	case in.Has(core.ActionDown):
		row = core.Clamp(row+1, 0, 2)
	case in.Has(core.ActionLeft):
		col = core.Clamp(col-1, 0, 2)
	case in.Has(core.ActionRight):
		col = core.Clamp(col+1, 0, 2)
	}
	g.cursor = row*3 + col
}

// selectedCell resolves the cell a human targeted this frame: a direct
// digit selection wins over confirming the cursor position.
func (g *Game) selectedCell(in core.InputFrame) (int, bool) {
	if in.Cell != core.NoCell {
		return in.Cell, true
	}
	if in.Has(core.ActionConfirm) {
		return g.cursor, true
	}
	return 0, false
}

// playHumanMove applies a human move and runs the turn sequence.
// While the computer's move is pending the human has no turn, so cell
// input is ignored then (occupied cells are already rejected by the
// engine either way).
func (g *Game) playHumanMove(index int) {
	if g.engine.Mode() == HumanVsComputer && g.engine.Turn() == MarkO {
		return
	}
	if !g.engine.ApplyMove(index) {
		return
	}
	g.moves++
	g.afterMove()
}

// playComputerMove asks the engine for a random move and applies it.
func (g *Game) playComputerMove() {
	index, err := g.engine.ChooseComputerMove()
	if err != nil {
		// Draw detection must have fired before the board filled up.
		return
	}
	if !g.engine.ApplyMove(index) {
		return
	}
	g.moves++
	g.afterMove()
}

// afterMove runs the shared post-move sequence: evaluate, surface a
// terminal result, or hand the turn over (possibly to the computer).
func (g *Game) afterMove() {
	result := g.engine.Evaluate()
	if result.Status != InProgress {
		g.finishMatch(result)
		return
	}

	g.engine.SwitchTurn()
	if g.engine.Mode() == HumanVsComputer && g.engine.Turn() == MarkO {
		g.scheduleComputerMove()
	}
}

// scheduleComputerMove arms the delayed computer move for the current
// board generation.
func (g *Game) scheduleComputerMove() {
	g.pendingIn = g.ticksFor(g.cfg.Computer.DelayMs)
	g.pendingGen = g.generation
}

// finishMatch records the outcome and starts the result banner.
func (g *Game) finishMatch(result Result) {
	g.lastResult = result
	g.bannerTicks = g.ticksFor(g.cfg.UI.ResultBannerMs)
	g.finished = append(g.finished, Outcome{
		Winner: result.Winner,
		IsDraw: result.Status == Draw,
		Mode:   g.engine.Mode(),
		Moves:  g.moves,
		Ticks:  g.tick - g.matchTick,
	})
}

// resetMatch clears the board for a new match and cancels any pending
// computer move.
func (g *Game) resetMatch() {
	g.engine.Reset()
	g.generation++
	g.pendingIn = 0
	g.bannerTicks = 0
	g.moves = 0
	g.matchTick = g.tick
	g.cursor = 4
}

// toggleMode flips the mode and resets, discarding the match in
// progress without confirmation.
func (g *Game) toggleMode() {
	if g.engine.Mode() == HumanVsHuman {
		g.engine.SetMode(HumanVsComputer)
	} else {
		g.engine.SetMode(HumanVsHuman)
	}
	g.generation++
	g.pendingIn = 0
	g.bannerTicks = 0
	g.moves = 0
	g.matchTick = g.tick
	g.cursor = 4
}

// ConsumeOutcomes returns all finished matches since the last call.
// The platform records them to storage.
func (g *Game) ConsumeOutcomes() []Outcome {
	out := g.finished
	g.finished = nil
	return out
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		StatusLine: g.statusLine(),
		Done:       g.done,
		Paused:     g.paused,
	}
}

// statusLine describes the current situation in one line.
func (g *Game) statusLine() string {
	if g.bannerTicks > 0 {
		switch g.lastResult.Status {
		case Won:
			return "Player " + g.lastResult.Winner.String() + " wins!"
		case Draw:
			return "It's a draw!"
		}
	}
	if g.engine.Mode() == HumanVsComputer && g.engine.Turn() == MarkO {
		return "Computer is thinking..."
	}
	return g.engine.Turn().String() + "'s turn"
}
