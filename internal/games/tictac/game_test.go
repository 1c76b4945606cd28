package tictac

import (
	"testing"

	"github.com/kmezhov/tictac-tui/internal/core"
)

const testTickRate = 30

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: testTickRate,
		Seed:     seed,
	}
}

// stepIdle advances the game n ticks with no input.
func stepIdle(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

// stepCell sends a direct cell selection for one tick.
func stepCell(g *Game, index int) {
	in := core.NewInputFrame()
	in.SetCell(index)
	g.Step(in)
}

// stepAction sends a single action for one tick.
func stepAction(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

func marks(b Board) (total, x, o int) {
	for _, c := range b {
		switch c {
		case CellX:
			x++
		case CellO:
			o++
		}
	}
	return x + o, x, o
}

func (g *Game) delayTicks() int {
	return g.ticksFor(g.cfg.Computer.DelayMs)
}

func TestComputerRespondsAfterDelay(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	stepCell(g, 0)

	board := g.Engine().Board()
	if board[0] != CellX {
		t.Fatalf("Cell 0 = %v after human move, expected X", board[0])
	}
	if g.Engine().Turn() != MarkO {
		t.Fatalf("Turn = %v after human move, expected O", g.Engine().Turn())
	}

	// The computer must not move before the delay elapses.
	delay := g.delayTicks()
	stepIdle(g, delay-1)
	if total, _, o := marks(g.Engine().Board()); total != 1 || o != 0 {
		t.Fatalf("Computer moved early: %d marks (%d O) before delay elapsed", total, o)
	}

	// One more tick fires the scheduled move.
	stepIdle(g, 1)
	total, x, o := marks(g.Engine().Board())
	if total != 2 || x != 1 || o != 1 {
		t.Fatalf("After computer move: total=%d x=%d o=%d, expected 2/1/1", total, x, o)
	}
	if g.Engine().Board()[0] != CellX {
		t.Error("Computer overwrote the human's mark")
	}
	if g.Engine().Turn() != MarkX {
		t.Errorf("Turn = %v after computer move, expected X", g.Engine().Turn())
	}
}

func TestResetCancelsPendingComputerMove(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	stepCell(g, 0)
	stepAction(g, core.ActionReset)

	if g.Engine().Board() != (Board{}) {
		t.Fatalf("Board not empty after reset: %v", g.Engine().Board())
	}

	// Run well past the original delay: the cancelled move must not fire.
	stepIdle(g, g.delayTicks()*3)
	if total, _, _ := marks(g.Engine().Board()); total != 0 {
		t.Errorf("Stale computer move fired after reset: board %v", g.Engine().Board())
	}
	if g.Engine().Turn() != MarkX {
		t.Errorf("Turn = %v after reset, expected X", g.Engine().Turn())
	}
}

func TestModeChangeCancelsPendingComputerMove(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	stepCell(g, 0)
	stepAction(g, core.ActionToggleMode)

	if g.Engine().Mode() != HumanVsHuman {
		t.Fatalf("Mode = %v after toggle, expected HumanVsHuman", g.Engine().Mode())
	}
	if g.Engine().Board() != (Board{}) {
		t.Fatalf("Board not empty after mode change: %v", g.Engine().Board())
	}

	stepIdle(g, g.delayTicks()*3)
	if total, _, _ := marks(g.Engine().Board()); total != 0 {
		t.Errorf("Stale computer move fired after mode change: board %v", g.Engine().Board())
	}
}

func TestHumanInputIgnoredWhileComputerPending(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	stepCell(g, 0)
	stepCell(g, 1) // It is the computer's turn; this must be a no-op

	total, _, o := marks(g.Engine().Board())
	if total != 1 || o != 0 {
		t.Errorf("Human move accepted during computer delay: total=%d o=%d", total, o)
	}
}

func TestTwoPlayerAlternation(t *testing.T) {
	g := NewTwoPlayer()
	g.Reset(testConfig(7))

	stepCell(g, 0)
	if g.Engine().Turn() != MarkO {
		t.Fatalf("Turn = %v after X move, expected O", g.Engine().Turn())
	}

	// No computer in this mode: nothing happens without input.
	stepIdle(g, 100)
	if total, _, _ := marks(g.Engine().Board()); total != 1 {
		t.Fatalf("Unexpected mark appeared in two-player mode: %v", g.Engine().Board())
	}

	stepCell(g, 1)
	if g.Engine().Board()[1] != CellO {
		t.Errorf("Cell 1 = %v after O move, expected O", g.Engine().Board()[1])
	}
	if g.Engine().Turn() != MarkX {
		t.Errorf("Turn = %v after O move, expected X", g.Engine().Turn())
	}
}

func TestWinShowsBannerThenResets(t *testing.T) {
	g := NewTwoPlayer()
	g.Reset(testConfig(7))

	// X@0 O@3 X@1 O@4 X@2 completes the top row for X.
	for _, idx := range []int{0, 3, 1, 4, 2} {
		stepCell(g, idx)
	}

	state := g.State()
	if state.StatusLine != "Player X wins!" {
		t.Errorf("StatusLine = %q, expected win banner", state.StatusLine)
	}

	// The finished board stays visible during the banner.
	if g.Engine().Board()[0] != CellX {
		t.Error("Board reset before the banner expired")
	}

	// Moves are not accepted while the banner shows.
	stepCell(g, 5)
	if g.Engine().Board()[5] != CellEmpty {
		t.Error("Move accepted during result banner")
	}

	// After the banner the board resets and X starts again.
	stepIdle(g, g.ticksFor(g.cfg.UI.ResultBannerMs))
	if g.Engine().Board() != (Board{}) {
		t.Errorf("Board not reset after banner: %v", g.Engine().Board())
	}
	if g.Engine().Turn() != MarkX {
		t.Errorf("Turn = %v after auto-reset, expected X", g.Engine().Turn())
	}
}

func TestOutcomeRecordedOnWin(t *testing.T) {
	g := NewTwoPlayer()
	g.Reset(testConfig(7))

	for _, idx := range []int{0, 3, 1, 4, 2} {
		stepCell(g, idx)
	}

	outcomes := g.ConsumeOutcomes()
	if len(outcomes) != 1 {
		t.Fatalf("ConsumeOutcomes() = %d outcomes, expected 1", len(outcomes))
	}
	out := outcomes[0]
	if out.IsDraw {
		t.Error("Outcome marked as draw for a won match")
	}
	if out.Winner != MarkX {
		t.Errorf("Outcome winner = %v, expected X", out.Winner)
	}
	if out.Moves != 5 {
		t.Errorf("Outcome moves = %d, expected 5", out.Moves)
	}
	if out.Mode != HumanVsHuman {
		t.Errorf("Outcome mode = %v, expected HumanVsHuman", out.Mode)
	}

	// Consuming drains the queue.
	if len(g.ConsumeOutcomes()) != 0 {
		t.Error("ConsumeOutcomes() not drained after first call")
	}
}

func TestOutcomeRecordedOnDraw(t *testing.T) {
	g := NewTwoPlayer()
	g.Reset(testConfig(7))

	// X: 0, 4, 5, 6, 7 / O: 1, 2, 3, 8 — final move fills the board
	// with no line completed.
	for _, idx := range []int{0, 1, 4, 2, 5, 3, 6, 8, 7} {
		stepCell(g, idx)
	}

	outcomes := g.ConsumeOutcomes()
	if len(outcomes) != 1 {
		t.Fatalf("ConsumeOutcomes() = %d outcomes, expected 1", len(outcomes))
	}
	if !outcomes[0].IsDraw {
		t.Error("Outcome not marked as draw")
	}
	if outcomes[0].Moves != 9 {
		t.Errorf("Outcome moves = %d, expected 9", outcomes[0].Moves)
	}
	if state := g.State(); state.StatusLine != "It's a draw!" {
		t.Errorf("StatusLine = %q, expected draw banner", state.StatusLine)
	}
}

func TestComputerMoveCanEndTheGame(t *testing.T) {
	// Play full matches against the computer until one ends on a
	// computer move; the banner and auto-reset must still run.
	g := New()
	g.Reset(testConfig(3))

	sawOutcome := false
	for round := 0; round < 30 && !sawOutcome; round++ {
		for i := 0; i < 600; i++ {
			if g.bannerTicks > 0 {
				sawOutcome = true
				break
			}
			if g.Engine().Mode() == HumanVsComputer && g.Engine().Turn() == MarkX {
				empty := g.Engine().EmptyCells()
				if len(empty) > 0 {
					stepCell(g, empty[0])
					continue
				}
			}
			stepIdle(g, 1)
		}
	}

	if !sawOutcome {
		t.Fatal("No match reached a terminal result")
	}

	// Let the banner run out: the board must reset for the next match.
	stepIdle(g, g.ticksFor(g.cfg.UI.ResultBannerMs)+1)
	if g.Engine().Board() != (Board{}) {
		t.Errorf("Board not reset after terminal result: %v", g.Engine().Board())
	}
	if g.Engine().Turn() != MarkX {
		t.Errorf("Turn = %v after auto-reset, expected X", g.Engine().Turn())
	}
}

func TestCursorNavigationAndConfirm(t *testing.T) {
	g := NewTwoPlayer()
	g.Reset(testConfig(7))

	// Cursor starts on the center; up-left lands on cell 0.
	stepAction(g, core.ActionUp)
	stepAction(g, core.ActionLeft)
	stepAction(g, core.ActionConfirm)

	if g.Engine().Board()[0] != CellX {
		t.Errorf("Cell 0 = %v after cursor confirm, expected X", g.Engine().Board()[0])
	}

	// Cursor clamps at the edges.
	stepAction(g, core.ActionUp)
	stepAction(g, core.ActionLeft)
	if g.cursor != 0 {
		t.Errorf("Cursor = %d after moving past the edge, expected 0", g.cursor)
	}
}

func TestDoneOnQuit(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	stepAction(g, core.ActionBack)
	if !g.State().Done {
		t.Error("State().Done = false after back action")
	}
}
