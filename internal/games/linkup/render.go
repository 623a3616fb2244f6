package linkup

import (
	"fmt"

	"github.com/daichengyi/minigame/internal/core"
)

const (
	cellWidth = 3 // screen columns per grid cell
	hudHeight = 2 // title and status rows above the board
)

// tileColors gives each tile type its own colour. Index 0 is unused.
var tileColors = [MaxTileTypes + 1]core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorBrightGreen,
	core.ColorBrightMagenta,
}

// connection bits for drawing path cells
const (
	linkUp = 1 << iota
	linkDown
	linkLeft
	linkRight
)

// minSize returns the smallest screen that fits the board, its frame, the
// HUD and the controls line.
func (g *Game) minSize() (w, h int) {
	rows, cols := 0, 0
	if g.board != nil {
		rows, cols = g.board.Rows(), g.board.Cols()
	}
	w = (cols+2)*cellWidth + 2
	h = hudHeight + (rows + 2) + 2 + 1
	return w, h
}

// boardOrigin returns the screen position of padded cell (0, 0).
func (g *Game) boardOrigin() (x, y int) {
	w, _ := g.minSize()
	x = (g.screenW-w)/2 + 1
	y = hudHeight + 1
	return x, y
}

// cellAt maps a screen position to an interior board cell.
func (g *Game) cellAt(x, y int) (row, col int, ok bool) {
	ox, oy := g.boardOrigin()
	if x < ox || y < oy {
		return 0, 0, false
	}
	row = y - oy - 1
	col = (x-ox)/cellWidth - 1
	if !g.board.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	ox, oy := g.boardOrigin()
	w, _ := g.minSize()
	frame := core.NewRect(ox-1, oy-1, w, g.board.Rows()+4)

	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderTiles(dst, ox, oy)
	g.renderLink(dst, ox, oy)
	g.renderStatus(dst, frame)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws the title, score, tile count and clock.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	title := "LINKUP"
	dst.DrawTextColored(frame.X+(frame.W-len(title))/2, 0, title, core.ColorBrightCyan)

	dst.DrawText(frame.X, 1, fmt.Sprintf("Score: %d", g.score))

	secs := g.elapsedSeconds()
	info := fmt.Sprintf("Tiles: %d/%d  %02d:%02d", g.board.RemainingCount(), g.total, secs/60, secs%60)
	dst.DrawText(core.Max(frame.Right()-len(info), frame.X), 1, info)
}

// renderTiles draws every tile with cursor, selection and hint markers.
func (g *Game) renderTiles(dst *core.Screen, ox, oy int) {
	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < g.board.Cols(); col++ {
			x := ox + (col+1)*cellWidth
			y := oy + row + 1
			cursor := !g.finished() && row == g.cursorRow && col == g.cursorCol

			t, ok := g.board.Get(row, col)
			if !ok {
				if cursor {
					dst.DrawTextColored(x, y, "[ ]", core.ColorBrightWhite)
				}
				continue
			}

			glyph := rune('0' + t.Type)
			color := tileColors[t.Type]
			left, right := ' ', ' '
			switch {
			case t.Selected:
				left, right = '(', ')'
				color = core.ColorBrightWhite
			case g.isHinted(t):
				left, right = '<', '>'
				color = core.ColorBrightYellow
			}
			if cursor {
				left, right = '[', ']'
			}

			dst.SetColored(x, y, left, core.ColorBrightWhite)
			dst.SetColored(x+1, y, glyph, color)
			dst.SetColored(x+2, y, right, core.ColorBrightWhite)
		}
	}
}

func (g *Game) isHinted(t Tile) bool {
	if g.hint == nil {
		return false
	}
	return t.Point() == g.hint.A.Point() || t.Point() == g.hint.B.Point()
}

// renderLink draws the path of the last eliminated pair.
func (g *Game) renderLink(dst *core.Screen, ox, oy int) {
	if len(g.link) < 2 {
		return
	}

	links := linkCells(g.link)
	first, last := g.link[0], g.link[len(g.link)-1]
	for p, mask := range links {
		x := ox + (p.Col+1)*cellWidth
		y := oy + p.Row + 1

		mid := linkGlyph(mask)
		if p == first || p == last {
			mid = '*'
		}
		if mask&linkLeft != 0 {
			dst.SetColored(x, y, '─', core.ColorBrightYellow)
		}
		dst.SetColored(x+1, y, mid, core.ColorBrightYellow)
		if mask&linkRight != 0 {
			dst.SetColored(x+2, y, '─', core.ColorBrightYellow)
		}
	}
}

// linkCells expands a waypoint path into unit cells and records which
// sides of each cell the line leaves through.
func linkCells(path Path) map[PathPoint]int {
	links := make(map[PathPoint]int)
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		d := directionBetween(from, to)
		if d == DirNone {
			continue
		}
		dr, dc := d.Delta()
		for p := from; p != to; {
			next := PathPoint{Row: p.Row + dr, Col: p.Col + dc}
			links[p] |= sideBit(d)
			links[next] |= sideBit(opposite(d))
			p = next
		}
	}
	return links
}

func sideBit(d Direction) int {
	switch d {
	case DirUp:
		return linkUp
	case DirDown:
		return linkDown
	case DirLeft:
		return linkLeft
	case DirRight:
		return linkRight
	default:
		return 0
	}
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// linkGlyph picks the box-drawing rune joining the given sides.
func linkGlyph(mask int) rune {
	switch mask {
	case linkLeft | linkDown:
		return '┐'
	case linkRight | linkDown:
		return '┌'
	case linkLeft | linkUp:
		return '┘'
	case linkRight | linkUp:
		return '└'
	case linkUp, linkDown, linkUp | linkDown:
		return '│'
	case linkLeft, linkRight, linkLeft | linkRight:
		return '─'
	default:
		return '┼'
	}
}

// renderStatus draws the notice line and the controls below the board.
func (g *Game) renderStatus(dst *core.Screen, frame core.Rect) {
	y := frame.Bottom()
	switch {
	case g.message != "":
		dst.DrawTextColored(frame.X, y, g.message, core.ColorBrightRed)
	case g.hint != nil:
		dst.DrawTextColored(frame.X, y, fmt.Sprintf("Hint: %s and %s (-%d)",
			g.hint.A.Point(), g.hint.B.Point(), g.cfg.Scoring.HintCost), core.ColorBrightYellow)
	default:
		dst.DrawTextColored(frame.X, y, g.Controls(), core.ColorGray)
	}
}

// renderOverlays draws pause and end-of-board boxes.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	centerX := frame.X + frame.W/2
	centerY := frame.Y + frame.H/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, centerX, centerY,
			"BOARD CLEARED!",
			fmt.Sprintf("Time bonus: +%d", g.timeBonus),
			fmt.Sprintf("Final score: %d", g.score),
			"Press R to restart")
	case g.stuck:
		g.drawOverlay(dst, centerX, centerY,
			"NO MOVES LEFT",
			fmt.Sprintf("%d tiles remain", g.board.RemainingCount()),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Select | T: Hint | P: Pause | Q: Quit"
}

// DrawPath renders the board with its border ring and the path traced over
// it, one character per cell. Endpoint tiles keep their digit.
func DrawPath(b *Board, path Path) string {
	links := linkCells(path)
	rows, cols := b.Rows()+2, b.Cols()+2

	lines := make([]rune, 0, rows*(cols+1))
	for pr := 0; pr < rows; pr++ {
		if pr > 0 {
			lines = append(lines, '\n')
		}
		for pc := 0; pc < cols; pc++ {
			p := fromPadded(PathPoint{Row: pr, Col: pc})
			t, occupied := b.Get(p.Row, p.Col)
			mask, onPath := links[p]
			switch {
			case occupied:
				lines = append(lines, rune('0'+t.Type))
			case onPath:
				lines = append(lines, linkGlyph(mask))
			case b.InBounds(p.Row, p.Col):
				lines = append(lines, '.')
			default:
				lines = append(lines, ' ')
			}
		}
	}
	return string(lines)
}
