package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// tileColors maps tile values to foreground colors; larger values reuse the last entry.
var tileColors = []struct {
	max   int
	color core.Color
}{
	{4, core.ColorWhite},
	{8, core.ColorYellow},
	{16, core.ColorOrange},
	{32, core.ColorRed},
	{64, core.ColorBrightRed},
	{128, core.ColorBrightYellow},
	{256, core.ColorGreen},
	{512, core.ColorBrightGreen},
	{1024, core.ColorCyan},
	{2048, core.ColorBrightMagenta},
}

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	for _, tc := range tileColors {
		if v <= tc.max {
			return tc.color
		}
	}
	return core.ColorMagenta
}

// cellWidth is wide enough for the largest tile plus padding and one border.
func (g *Game) cellWidth() int {
	digits := len(strconv.Itoa(max(g.board.MaxTile(), DefaultTarget)))
	return digits + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	n := g.board.Size()
	cw := g.cellWidth()
	boardW := n*cw + 1
	boardH := n*cellHeight + 1

	if dst.Width() < boardW || dst.Height() < boardH+hudHeight+1 {
		g.renderTooSmall(dst)
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	frame := area.CenterIn(boardW, boardH+hudHeight+1)
	board := core.NewRect(frame.X, frame.Y+hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board, cw)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score and target above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	top := board.Y - hudHeight - 1

	title := g.Title()
	dst.DrawTextColored(board.X+(board.W-len(title))/2, top, title, core.ColorBrightYellow)

	dst.DrawText(board.X, top+1, fmt.Sprintf("Score: %d", g.score))

	info := fmt.Sprintf("Max: %d", g.board.MaxTile())
	if g.variant.HasTarget() {
		info = fmt.Sprintf("Target: %d", g.variant.Target)
	}
	dst.DrawText(max(board.Right()-len(info), board.X), top+1, info)

	moves := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawTextColored(board.X, top+2, moves, core.ColorGray)
}

// renderBoard draws the N×N grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, cw int) {
	n := g.board.Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := board.X + x*cw
			py := board.Y + y*cellHeight
			dst.SetColored(px, py, gridCorner(x, y, n), core.ColorGray)

			if x < n {
				for i := 1; i < cw; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	spawn, spawned := g.LastSpawn()
	for r := range n {
		for c := range n {
			v := g.board.At(r, c)
			if v == 0 {
				continue
			}
			s := strconv.Itoa(v)
			cellX := board.X + c*cw + 1
			cellY := board.Y + r*cellHeight + 1
			pad := max((cw-1-len(s))/2, 0)

			color := TileColor(v)
			if spawned && spawn == (Cell{Row: r, Col: c}) {
				color = core.ColorBrightWhite
			}
			dst.DrawTextColored(cellX+pad, cellY, s, color)
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the terminal-state banner.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch g.status {
	case StatusWon:
		g.drawOverlay(dst, board, core.ColorBrightGreen,
			"YOU WIN!", fmt.Sprintf("Reached %d", g.variant.Target), "R: new game  B: menu")
	case StatusLost:
		g.drawOverlay(dst, board, core.ColorBrightRed,
			"GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "R: new game  B: menu")
	}
}

// drawOverlay draws a boxed message centered over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.CenterIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	for i, line := range lines {
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, color)
	}
}
