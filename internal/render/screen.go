package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/randomizedcoder/termsnake/internal/monitor"
)

// Status line messages.
const (
	StatusReady = "Press q to exit or arrow keys to play"
	StatusDied  = "Snake has died"
)

const (
	headGlyph = '#'
	foodGlyph = '*'
)

var (
	plain = tcell.StyleDefault
	green = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	edge  = tcell.StyleDefault
)

// Screen draws the board on a tcell screen. Board cell (x, y) is screen
// cell (x, y); the status line is row height, just below the board.
type Screen struct {
	s      tcell.Screen
	width  int
	height int
	score  int
}

// NewScreen creates a renderer for a width x height board, border
// included. The caller owns s and must have initialised it.
func NewScreen(s tcell.Screen, width, height int) *Screen {
	return &Screen{
		s:      s,
		width:  width,
		height: height,
	}
}

// Init clears the screen and draws the border and the ready message.
func (r *Screen) Init() {
	r.s.HideCursor()
	r.s.Clear()
	r.border()
	r.status(StatusReady)
	r.s.Show()
}

// Draw renders one signal and shows the result once.
func (r *Screen) Draw(sig monitor.RenderSignal, snap monitor.Snapshot) error {
	switch sig {
	case monitor.RenderSnakeAndFoodRefresh, monitor.RenderSnakeRefresh:
		r.clearTail(snap)
		if snap.HasFood {
			r.cell(snap.Food, foodGlyph, red)
		}
		r.cell(snap.Head, headGlyph, green)
		if sig == monitor.RenderSnakeAndFoodRefresh || snap.Score != r.score {
			r.score = snap.Score
			r.status("Score: " + strconv.Itoa(snap.Score))
		}
	case monitor.RenderSnakeDied:
		r.status(StatusDied)
		r.clearTail(snap)
		r.cell(snap.Head, headGlyph, red)
	default:
		return nil
	}
	r.s.Show()
	return nil
}

// Resize repaints everything after the terminal changed size.
func (r *Screen) Resize() {
	r.s.Sync()
}

func (r *Screen) clearTail(snap monitor.Snapshot) {
	// A tail vacated and re-entered by the head in one step stays drawn.
	if snap.HasTail && snap.Tail != snap.Head {
		r.cell(snap.Tail, ' ', plain)
	}
}

func (r *Screen) cell(p monitor.Point, glyph rune, style tcell.Style) {
	r.s.SetContent(p.X, p.Y, glyph, nil, style)
}

func (r *Screen) border() {
	last := r.width - 1
	for y := 0; y < r.height; y++ {
		switch y {
		case 0, r.height - 1:
			r.s.SetContent(0, y, '+', nil, edge)
			for x := 1; x < last; x++ {
				r.s.SetContent(x, y, '-', nil, edge)
			}
			r.s.SetContent(last, y, '+', nil, edge)
		default:
			r.s.SetContent(0, y, '|', nil, edge)
			r.s.SetContent(last, y, '|', nil, edge)
		}
	}
}

// status rewrites the whole status row, blanking what the previous
// message left behind.
func (r *Screen) status(msg string) {
	cols, _ := r.s.Size()
	if cols < r.width {
		cols = r.width
	}
	x := 0
	for _, c := range msg {
		r.s.SetContent(x, r.height, c, nil, plain)
		x++
	}
	for ; x < cols; x++ {
		r.s.SetContent(x, r.height, ' ', nil, plain)
	}
}
