// Package render draws game state on the terminal.
//
// Dispatch is the render loop. It owns the terminal for the lifetime of a
// session and must run on the goroutine that will restore the terminal
// afterwards.
package render

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/randomizedcoder/termsnake/internal/monitor"
)

// ErrNoColor is returned by CheckColor when the terminal cannot show
// colors.
var ErrNoColor = errors.New("render: terminal does not support colors")

// Renderer draws one render signal.
type Renderer interface {
	Draw(sig monitor.RenderSignal, snap monitor.Snapshot) error
}

// Dispatch waits on the render slot and hands each signal to r until
// GAME_EXIT. A draw error stops the loop.
func Dispatch(mon *monitor.Monitor, r Renderer) error {
	frames := 0
	for {
		sig, snap := mon.AwaitRenderSignal()
		switch sig {
		case monitor.RenderGameExit:
			log.WithField("frames", frames).Debug("Render loop exited")
			return nil
		case monitor.RenderSnakeRefresh, monitor.RenderSnakeAndFoodRefresh, monitor.RenderSnakeDied:
			if err := r.Draw(sig, snap); err != nil {
				return fmt.Errorf("render: draw %s: %w", sig, err)
			}
			frames++
		default:
			log.WithField("signal", sig).Debug("Ignored render signal")
		}
	}
}

// MinColors is the palette size the board needs: red and green on the
// default background.
const MinColors = 8

// Colorer reports how many colors a terminal can show. tcell.Screen
// satisfies it.
type Colorer interface {
	Colors() int
}

// CheckColor reports ErrNoColor when c cannot show MinColors colors, as
// read from its terminfo entry.
func CheckColor(c Colorer) error {
	if n := c.Colors(); n < MinColors {
		return fmt.Errorf("%w: %d colors", ErrNoColor, n)
	}
	return nil
}
