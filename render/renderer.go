package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek/board"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/parameter"
	"github.com/lixenwraith/snek/status"
)

// Layout: one grid square is two terminal columns, framed by a one-cell border
const (
	cellWidth = 2
	originX   = 1
	originY   = 1
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	metrics *status.Registry
	debug   bool
}

// NewRenderer creates a renderer; metrics are listed below the HUD when debug is set
func NewRenderer(screen tcell.Screen, metrics *status.Registry, debug bool) *Renderer {
	return &Renderer{screen: screen, metrics: metrics, debug: debug}
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(s Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	b := s.Board
	r.drawBorder(b.Level.Width, b.Level.Height, defaultStyle)
	r.drawGrid(b, defaultStyle)
	r.drawSnake(b, defaultStyle)

	hudY := originY + b.Level.Height + 1
	r.drawStatusBar(s, hudY, defaultStyle)
	r.drawOverlay(s, b.Level.Width, b.Level.Height)

	if r.debug && r.metrics != nil {
		r.drawMetrics(hudY+2, defaultStyle)
	}

	r.screen.Show()
}

// CellOrigin returns the screen position of grid square p's left column
func CellOrigin(p core.Point) (int, int) {
	return originX + p.X*cellWidth, originY + p.Y
}

func (r *Renderer) drawBorder(w, h int, style tcell.Style) {
	st := style.Foreground(RgbBorder)
	right := originX + w*cellWidth
	bottom := originY + h

	for x := originX; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, st)
		r.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := originY; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, st)
		r.screen.SetContent(right, y, '│', nil, st)
	}
	r.screen.SetContent(0, 0, '┌', nil, st)
	r.screen.SetContent(right, 0, '┐', nil, st)
	r.screen.SetContent(0, bottom, '└', nil, st)
	r.screen.SetContent(right, bottom, '┘', nil, st)
}

func (r *Renderer) drawGrid(b *board.Board, style tcell.Style) {
	g := b.Grid
	for i, sq := range g.Cells {
		p := g.Point(i)
		ch, st := squareGlyph(sq, b.Exit, style)
		r.setCell(p, ch, st)
	}
}

// squareGlyph picks the rune and style of a square without the snake
func squareGlyph(sq board.Square, exit board.ExitState, style tcell.Style) (rune, tcell.Style) {
	switch sq.Fg {
	case board.FgWall:
		return '█', style.Foreground(RgbWall)
	case board.FgFood:
		return '●', style.Foreground(RgbFood)
	}

	switch sq.Bg {
	case board.BgExit:
		switch {
		case exit.Closing(parameter.ClosingWindow):
			return '▒', style.Foreground(RgbExitClosing)
		case exit.Open():
			return '░', style.Foreground(RgbExitOpen)
		default:
			return '▓', style.Foreground(RgbExitLocked)
		}
	case board.BgWallSpawn:
		if sq.SpawnVisible() {
			if sq.Seed {
				return '▒', style.Foreground(RgbHazardSeed)
			}
			return '░', style.Foreground(RgbHazard)
		}
	}
	return ' ', style
}

func (r *Renderer) drawSnake(b *board.Board, style tcell.Style) {
	s := b.Snake
	// Tail first so the head wins on stacked segments
	for i := s.Len() - 1; i >= 0; i-- {
		p := s.At(i)
		if !p.InBounds(b.Level.Width, b.Level.Height) {
			continue
		}
		if i == 0 {
			r.setCell(p, '█', style.Foreground(RgbSnakeHead))
		} else {
			r.setCell(p, '▓', style.Foreground(RgbSnakeBody))
		}
	}
}

// setCell fills both terminal columns of a grid square
func (r *Renderer) setCell(p core.Point, ch rune, style tcell.Style) {
	x, y := CellOrigin(p)
	for dx := 0; dx < cellWidth; dx++ {
		r.screen.SetContent(x+dx, y, ch, nil, style)
	}
}

func (r *Renderer) drawStatusBar(s Snapshot, y int, style tcell.Style) {
	x := 0
	x = r.drawText(x, y, fmt.Sprintf(" L%d ", s.Board.Level.Number), style.Foreground(RgbOverlayText).Background(RgbBorder))
	x++

	score := fmt.Sprintf("Score %d", s.Run.Score)
	if s.Run.LevelScore > 0 {
		score += fmt.Sprintf(" (+%d)", s.Run.LevelScore)
	}
	x = r.drawText(x, y, score, style.Foreground(RgbScore))
	x += 2

	lives := strings.Repeat("♥", max(s.Run.Lives, 0))
	x = r.drawText(x, y, lives, style.Foreground(RgbLives))
	x += 2

	r.drawText(x, y, exitText(s.Board.Exit), style.Foreground(RgbStatusText))

	// Second row: state and last key
	hint := s.StateName
	if s.LastKey != input.KeyNone {
		hint += "  key:" + s.LastKey.String()
	}
	r.drawText(0, y+1, hint, style.Foreground(RgbStatusDim))
}

func exitText(e board.ExitState) string {
	if e.Open() {
		return fmt.Sprintf("Exit open %d", max(e.Remaining, 0))
	}
	return fmt.Sprintf("Exit locked, %d food to go", e.Remaining)
}

// overlayLines returns the message box for states that freeze the board
func overlayLines(s Snapshot) []string {
	switch s.State {
	case game.StateMenu:
		return []string{"SNEK", "", "Space to start", "arrows / wasd / hjkl to steer", "q to quit"}
	case game.StatePaused:
		return []string{"PAUSED", "", "Esc or Space to resume"}
	case game.StateDied:
		return []string{"OUCH", "", fmt.Sprintf("%d lives left", s.Run.Lives), "Space to retry"}
	case game.StateGameOver:
		return []string{"GAME OVER", "", fmt.Sprintf("Score %d", s.Run.Score), "Space for a new game"}
	}
	return nil
}

func (r *Renderer) drawOverlay(s Snapshot, w, h int) {
	lines := overlayLines(s)
	if len(lines) == 0 {
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	left := originX + (w*cellWidth-boxW)/2
	top := originY + (h-boxH)/2
	st := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayText)

	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
	for i, l := range lines {
		lx := left + (boxW-len([]rune(l)))/2
		r.drawText(lx, top+1+i, l, st)
	}
}

func (r *Renderer) drawMetrics(y int, style tcell.Style) {
	st := style.Foreground(RgbDebugText)
	for i, line := range r.metrics.Lines() {
		r.drawText(0, y+i, line, st)
	}
}

// drawText writes s from x and returns the column after its last rune
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
