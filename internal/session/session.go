// Package session starts and joins the workers of one game.
//
// A session runs three goroutines besides the caller's render loop:
//
//	input  reads keys and publishes game signals
//	game   applies game signals and publishes render signals
//	pacer  publishes a TICK every frame interval and drains the journal
//
// The game goroutine is the session's lifetime. Once it returns, Wait
// stops the pacer and the input loop and joins them.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/randomizedcoder/termsnake/internal/cancel"
	"github.com/randomizedcoder/termsnake/internal/game"
	"github.com/randomizedcoder/termsnake/internal/input"
	"github.com/randomizedcoder/termsnake/internal/journal"
	"github.com/randomizedcoder/termsnake/internal/monitor"
	"github.com/randomizedcoder/termsnake/internal/tick"
)

// ErrStartFailed wraps the error of a worker that could not be started.
var ErrStartFailed = errors.New("session: worker start failed")

// ErrNotStarted is returned by Wait when Start did not succeed. A failed
// Start has already joined whatever it launched.
var ErrNotStarted = errors.New("session: not started")

// Starter runs fn on a new goroutine, or reports why it could not.
type Starter func(fn func()) error

// GoStarter starts fn with a go statement. It never fails.
func GoStarter(fn func()) error {
	go fn()
	return nil
}

// Options tune a Session. Zero values pick the defaults.
type Options struct {
	FrameInterval time.Duration
	Clock         clockwork.Clock
	Start         Starter
}

// Summary describes a finished session.
type Summary struct {
	ID        string
	Result    game.Result
	Started   time.Time
	Ended     time.Time
	Delivered uint64
	Skipped   uint64
}

// Session owns the worker goroutines of one game.
type Session struct {
	ID string

	mon     *monitor.Monitor
	game    *game.Game
	keys    input.KeySource
	journal *journal.Journal

	clock    clockwork.Clock
	interval time.Duration
	start    Starter

	inputStop *cancel.AtomicCanceler
	pacerStop *cancel.ContextCanceler
	pacer     *tick.Pacer

	gameDone  chan struct{}
	inputDone chan struct{}
	pacerDone chan struct{}

	result   game.Result
	inputErr error
	started  time.Time
	running  bool
}

// New creates a session. j may be nil to run without a journal.
func New(mon *monitor.Monitor, g *game.Game, keys input.KeySource, j *journal.Journal, opts Options) *Session {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = tick.DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Start == nil {
		opts.Start = GoStarter
	}
	return &Session{
		ID:        uuid.NewString(),
		mon:       mon,
		game:      g,
		keys:      keys,
		journal:   j,
		clock:     opts.Clock,
		interval:  opts.FrameInterval,
		start:     opts.Start,
		inputStop: cancel.NewAtomic(),
		gameDone:  make(chan struct{}),
		inputDone: make(chan struct{}),
		pacerDone: make(chan struct{}),
	}
}

// Start launches the game loop, then the input loop, then the pacer. If a
// later worker fails to start, the ones already running are stopped and
// joined before Start returns an error wrapping ErrStartFailed. ctx
// bounds the pacer only.
func (s *Session) Start(ctx context.Context) error {
	logger := log.WithField("session", s.ID)
	s.started = s.clock.Now()
	s.pacerStop = cancel.NewContext(ctx)

	err := s.start(func() {
		defer close(s.gameDone)
		logger.Debug("Game loop started")
		s.result = s.game.Run()
	})
	if err != nil {
		s.pacerStop.Cancel()
		return fmt.Errorf("%w: game loop: %w", ErrStartFailed, err)
	}

	var rec journal.Recorder
	if s.journal != nil {
		rec = s.journal
	}
	loop := input.NewLoop(s.keys, s.mon, s.inputStop, rec)
	err = s.start(func() {
		defer close(s.inputDone)
		logger.Debug("Input loop started")
		s.inputErr = loop.Run()
	})
	if err != nil {
		s.pacerStop.Cancel()
		s.mon.PublishGameSignal(monitor.SignalExit)
		<-s.gameDone
		logger.WithError(err).Error("Input loop failed to start")
		return fmt.Errorf("%w: input loop: %w", ErrStartFailed, err)
	}

	err = s.start(func() {
		defer close(s.pacerDone)
		s.pacer = tick.NewPacer(tick.NewTicker(s.clock, s.interval), s.frame)
		logger.WithField("interval", s.interval).Debug("Pacer started")
		s.pacer.Run(s.pacerStop.Context())
	})
	if err != nil {
		s.pacerStop.Cancel()
		s.inputStop.Cancel()
		s.mon.PublishGameSignal(monitor.SignalExit)
		<-s.gameDone
		<-s.inputDone
		logger.WithError(err).Error("Pacer failed to start")
		return fmt.Errorf("%w: pacer: %w", ErrStartFailed, err)
	}
	s.running = true
	return nil
}

func (s *Session) frame() bool {
	if s.journal != nil {
		s.journal.Drain()
	}
	// The ticker and the stop can be ready together; no TICK after a stop.
	if s.pacerStop.Done() {
		return false
	}
	return s.mon.PublishGameTick()
}

// Stop asks the game loop to exit. It does not wait; call Wait.
func (s *Session) Stop() {
	s.mon.PublishGameSignal(monitor.SignalExit)
}

// Wait blocks until the game loop returns, then stops and joins the other
// workers and drains the journal one last time. The error is the input
// loop's, if its key source failed. Wait is only valid after Start
// returned nil; otherwise it returns ErrNotStarted at once.
func (s *Session) Wait() (Summary, error) {
	if !s.running {
		return Summary{ID: s.ID}, ErrNotStarted
	}
	<-s.gameDone
	s.pacerStop.Cancel()
	s.inputStop.Cancel()
	<-s.pacerDone
	<-s.inputDone

	if s.journal != nil {
		s.journal.Drain()
	}
	delivered, skipped := s.pacer.Stats()
	sum := Summary{
		ID:        s.ID,
		Result:    s.result,
		Started:   s.started,
		Ended:     s.clock.Now(),
		Delivered: delivered,
		Skipped:   skipped,
	}
	log.WithFields(log.Fields{
		"session":   s.ID,
		"score":     sum.Result.Score,
		"delivered": delivered,
		"skipped":   skipped,
	}).Debug("Session finished")
	return sum, s.inputErr
}
