package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/randomizedcoder/termsnake/internal/monitor"
)

// Key is a decoded terminal key press.
type Key uint8

const (
	// KeyNone means the read timed out without a key press.
	KeyNone Key = iota
	KeyQuit
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeyOther is any key the game does not bind.
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyQuit:
		return "quit"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// Translate maps a key to the game signal it publishes. The second result
// is false for keys that publish nothing.
func Translate(k Key) (monitor.GameSignal, bool) {
	switch k {
	case KeyQuit:
		return monitor.SignalExit, true
	case KeyUp:
		return monitor.SignalMoveUp, true
	case KeyDown:
		return monitor.SignalMoveDown, true
	case KeyLeft:
		return monitor.SignalMoveLeft, true
	case KeyRight:
		return monitor.SignalMoveRight, true
	default:
		return monitor.SignalNone, false
	}
}

// KeyFromEvent decodes a tcell key event. Ctrl-C quits, since the
// screen holds the terminal in raw mode.
func KeyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			return KeyQuit
		}
	}
	return KeyOther
}
