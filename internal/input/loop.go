// Package input captures key presses and publishes them to the monitor.
package input

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/randomizedcoder/termsnake/internal/cancel"
	"github.com/randomizedcoder/termsnake/internal/journal"
	"github.com/randomizedcoder/termsnake/internal/monitor"
)

// ErrNoTerminal is returned when the key source is not an interactive
// terminal.
var ErrNoTerminal = errors.New("input: not a terminal")

// KeySource is a blocking source of key presses. ReadKey returns KeyNone
// when a read times out without input.
type KeySource interface {
	ReadKey() (Key, error)
}

type state uint8

const (
	stateRunning state = iota
	stateStopped
)

// Loop reads keys from a KeySource and publishes their game signals.
type Loop struct {
	src     KeySource
	mon     *monitor.Monitor
	stop    cancel.Canceler
	journal journal.Recorder
}

// NewLoop creates an input loop. stop and rec may be nil.
func NewLoop(src KeySource, mon *monitor.Monitor, stop cancel.Canceler, rec journal.Recorder) *Loop {
	return &Loop{
		src:     src,
		mon:     mon,
		stop:    stop,
		journal: rec,
	}
}

// Run reads keys until the quit key is pressed, the stop flag is raised,
// or the source fails. The flag is checked before every read, so neither
// a stream of keys nor a silent source can hold the loop past a stop. A
// source failure publishes EXIT so the game loop does not wait forever.
func (l *Loop) Run() error {
	st := stateRunning
	for st == stateRunning {
		if l.stop != nil && l.stop.Done() {
			log.Debug("Input stopped by session")
			break
		}

		key, err := l.src.ReadKey()
		if err != nil {
			l.mon.PublishGameSignal(monitor.SignalExit)
			return fmt.Errorf("input: read key: %w", err)
		}
		if key == KeyNone {
			continue
		}

		sig, ok := Translate(key)
		if !ok {
			continue
		}
		l.mon.PublishGameSignal(sig)
		if l.journal != nil {
			l.journal.Record(journal.ProducerInput, journal.Event{
				Kind:   journal.KindKey,
				Signal: sig.String(),
			})
		}
		log.WithFields(log.Fields{"key": key, "signal": sig}).Debug("Key published")

		if key == KeyQuit {
			st = stateStopped
		}
	}
	return nil
}
