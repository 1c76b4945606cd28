package tictac

import (
	"errors"
	"math/rand"
)

// Mark is one of the two players' symbols.
type Mark int8

const (
	MarkX Mark = iota + 1
	MarkO
)

// String returns the board symbol for the mark.
func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == MarkX {
		return MarkO
	}
	return MarkX
}

// Cell is a single board position: empty or holding a mark.
type Cell int8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// cellFor converts a mark to its cell value.
func cellFor(m Mark) Cell {
	if m == MarkX {
		return CellX
	}
	return CellO
}

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Board holds the nine cells in row-major order:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Board [BoardSize]Cell

// Mode selects who plays O.
type Mode int

const (
	HumanVsHuman Mode = iota
	HumanVsComputer
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "2 Players"
	case HumanVsComputer:
		return "vs Computer"
	default:
		return "Unknown"
	}
}

// Status describes where a game stands after a move.
type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

// Result is the outcome of evaluating the board. Winner is only
// meaningful when Status is Won.
type Result struct {
	Status Status
	Winner Mark
}

// winLines are the eight fixed winning triples: three rows, three
// columns, two diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// ErrBoardFull is returned when a computer move is requested on a full
// board. The caller must detect Draw before asking for a move.
var ErrBoardFull = errors.New("tictac: no empty cell for computer move")

// Engine owns the board, the current turn and the game mode.
// It is the only mutator of cell contents; the presentation layer
// queries it for rendering and feeds it explicit cell indices.
type Engine struct {
	board Board
	turn  Mark
	mode  Mode
	rng   *rand.Rand
}

// NewEngine creates an engine in the given mode with a fresh board.
// The RNG drives the computer's move selection and is injected so
// tests can fix the seed.
func NewEngine(mode Mode, rng *rand.Rand) *Engine {
	return &Engine{
		turn: MarkX,
		mode: mode,
		rng:  rng,
	}
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Turn returns the mark that plays next.
func (e *Engine) Turn() Mark {
	return e.turn
}

// Mode returns the current game mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// ApplyMove places the current player's mark at the given cell.
// Out-of-range indices and occupied cells are rejected silently;
// the return value reports whether the board changed.
func (e *Engine) ApplyMove(index int) bool {
	if index < 0 || index >= BoardSize {
		return false
	}
	if e.board[index] != CellEmpty {
		return false
	}
	e.board[index] = cellFor(e.turn)
	return true
}

// Evaluate computes the result for the current board: a win if any of
// the eight lines is uniformly marked, a draw if the board is full with
// no winner, otherwise in progress.
func (e *Engine) Evaluate() Result {
	for _, line := range winLines {
		a, b, c := e.board[line[0]], e.board[line[1]], e.board[line[2]]
		if a != CellEmpty && a == b && b == c {
			winner := MarkX
			if a == CellO {
				winner = MarkO
			}
			return Result{Status: Won, Winner: winner}
		}
	}
	for _, cell := range e.board {
		if cell == CellEmpty {
			return Result{Status: InProgress}
		}
	}
	return Result{Status: Draw}
}

// SwitchTurn toggles the current player between X and O.
func (e *Engine) SwitchTurn() {
	e.turn = e.turn.Other()
}

// EmptyCells returns the indices of all empty cells in board order.
func (e *Engine) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, c := range e.board {
		if c == CellEmpty {
			cells = append(cells, i)
		}
	}
	return cells
}

// ChooseComputerMove picks a cell for the computer uniformly at random
// among the empty ones. Calling it on a full board is an orchestration
// bug and returns ErrBoardFull.
func (e *Engine) ChooseComputerMove() (int, error) {
	empty := e.EmptyCells()
	if len(empty) == 0 {
		return 0, ErrBoardFull
	}
	return empty[e.rng.Intn(len(empty))], nil
}

// Reset clears the board and gives the first move back to X.
// The mode is left untouched.
func (e *Engine) Reset() {
	e.board = Board{}
	e.turn = MarkX
}

// SetMode changes the game mode and unconditionally resets, discarding
// any game in progress.
func (e *Engine) SetMode(mode Mode) {
	e.mode = mode
	e.Reset()
}
