package tictac

import "github.com/kmezhov/tictac-tui/internal/core"

// Board box dimensions: 3 cells of width 3 plus 4 grid lines.
const (
	boardW = 13
	boardH = 7
)

// glyphFor returns the configured rune for a board cell.
func (g *Game) glyphFor(c Cell) (rune, core.Color) {
	switch c {
	case CellX:
		return firstRune(g.cfg.UI.XGlyph, 'X'), core.ColorBrightRed
	case CellO:
		return firstRune(g.cfg.UI.OGlyph, 'O'), core.ColorBrightCyan
	default:
		return ' ', core.ColorDefault
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Render draws the board, status line, and key help.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	originX := (w - boardW) / 2
	originY := (h - boardH) / 2
	if originY < 2 {
		originY = 2
	}

	dst.DrawTextCenteredColored(originY-2, "T I C - T A C - T O E", core.ColorBrightWhite)

	g.drawGrid(dst, originX, originY)
	g.drawMarks(dst, originX, originY)

	status := g.statusLine()
	statusColor := core.ColorWhite
	if g.bannerTicks > 0 {
		statusColor = core.ColorBrightYellow
	}
	dst.DrawTextCenteredColored(originY+boardH+1, status, statusColor)

	dst.DrawTextCenteredColored(originY+boardH+2, g.engine.Mode().String(), core.ColorGray)
	dst.DrawTextCenteredColored(h-1, "arrows/1-9 move · enter place · m mode · r reset · q quit", core.ColorGray)

	if g.paused {
		dst.DrawTextCenteredColored(h/2, " P A U S E D ", core.ColorBrightYellow)
	}
}

// drawGrid draws the 3x3 box outline with crossing lines.
func (g *Game) drawGrid(dst *core.Screen, x, y int) {
	rows := []string{
		"┌───┬───┬───┐",
		"│   │   │   │",
		"├───┼───┼───┤",
		"│   │   │   │",
		"├───┼───┼───┤",
		"│   │   │   │",
		"└───┴───┴───┘",
	}
	for i, row := range rows {
		dst.DrawText(x, y+i, row)
	}
}

// drawMarks fills in the marks and highlights the cursor cell.
func (g *Game) drawMarks(dst *core.Screen, x, y int) {
	board := g.engine.Board()
	showCursor := g.bannerTicks == 0 && !g.paused &&
		!(g.engine.Mode() == HumanVsComputer && g.engine.Turn() == MarkO)

	for i, cell := range board {
		row, col := i/3, i%3
		cx := x + 2 + col*4
		cy := y + 1 + row*2

		r, color := g.glyphFor(cell)
		dst.SetColored(cx, cy, r, color)

		if showCursor && i == g.cursor {
			dst.SetColored(cx-1, cy, '[', core.ColorBrightYellow)
			dst.SetColored(cx+1, cy, ']', core.ColorBrightYellow)
		}
	}
}
