package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/randomizedcoder/termsnake/internal/config"
	"github.com/randomizedcoder/termsnake/internal/game"
	"github.com/randomizedcoder/termsnake/internal/input"
	"github.com/randomizedcoder/termsnake/internal/journal"
	"github.com/randomizedcoder/termsnake/internal/monitor"
	"github.com/randomizedcoder/termsnake/internal/render"
	"github.com/randomizedcoder/termsnake/internal/scores"
	"github.com/randomizedcoder/termsnake/internal/session"
)

// Play runs one game on the controlling terminal.
func Play(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	screen, err := openScreen()
	if err != nil {
		return err
	}
	if err := render.CheckColor(screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		log.WithError(err).Fatal("Terminal capability check failed")
	}

	store, err := scores.Open(cfg.ScoreDB)
	if err != nil {
		screen.Fini()
		return err
	}
	defer store.Close()

	sum, j, err := runGame(c.Context, cfg, screen)
	if err != nil {
		return err
	}

	_, err = store.Record(c.Context, scores.Entry{
		SessionID: sum.ID,
		Player:    cfg.Player,
		Score:     sum.Result.Score,
		Length:    sum.Result.Length,
		Moves:     len(sum.Result.Moves),
		PlayedAt:  sum.Started,
		Duration:  sum.Ended.Sub(sum.Started),
	})
	if err != nil {
		log.WithError(err).Error("Failed to record score")
	}

	if cfg.ReplayFile != "" {
		if err := writeReplay(cfg, sum, j); err != nil {
			log.WithError(err).Error("Failed to write replay")
		}
	}

	fmt.Printf("Score: %d\n", sum.Result.Score)
	return nil
}

// openScreen takes over the controlling terminal. The caller must Fini the
// screen to restore it.
func openScreen() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, input.ErrNoTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// runGame plays on screen and restores the terminal before returning.
func runGame(ctx context.Context, cfg config.Config, screen tcell.Screen) (session.Summary, *journal.Journal, error) {
	defer screen.Fini()

	cols, rows := screen.Size()
	width, height := cfg.Board(cols, rows)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := clockwork.NewRealClock()
	mon := monitor.New()
	j, err := journal.New(cfg.JournalCapacity, clock)
	if err != nil {
		return session.Summary{}, nil, err
	}
	g, err := game.New(game.Config{Width: width, Height: height, Seed: seed}, mon, j)
	if err != nil {
		return session.Summary{}, nil, err
	}

	board := render.NewScreen(screen, width, height)
	board.Init()
	keys := input.NewScreenKeys(screen, clock, input.DefaultReadTimeout, board.Resize)
	defer keys.Close()

	sess := session.New(mon, g, keys, j, session.Options{
		FrameInterval: cfg.FrameInterval,
		Clock:         clock,
	})
	log.WithFields(log.Fields{
		"session": sess.ID,
		"width":   width,
		"height":  height,
		"seed":    seed,
	}).Info("Game starting")

	if err := sess.Start(ctx); err != nil {
		return session.Summary{}, nil, err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	rendered := make(chan struct{})
	go func() {
		select {
		case sig := <-sigs:
			log.WithField("signal", sig).Info("Stopping on signal")
			sess.Stop()
		case <-rendered:
		}
	}()

	if err := render.Dispatch(mon, board); err != nil {
		log.WithError(err).Error("Render loop failed")
		sess.Stop()
	}
	close(rendered)

	sum, err := sess.Wait()
	if err != nil {
		log.WithError(err).Error("Input loop failed")
	}
	log.WithFields(log.Fields{
		"session": sum.ID,
		"score":   sum.Result.Score,
		"alive":   sum.Result.Alive,
		"dropped": j.Dropped(),
	}).Info("Game finished")
	return sum, j, nil
}

func writeReplay(cfg config.Config, sum session.Summary, j *journal.Journal) error {
	f, err := os.Create(cfg.ReplayFile)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	defer f.Close()

	moves := make([]string, 0, len(sum.Result.Moves))
	for _, m := range sum.Result.Moves {
		moves = append(moves, m.Signal.String())
	}
	return j.WriteReplay(f, journal.Meta{
		SessionID: sum.ID,
		Player:    cfg.Player,
		Score:     sum.Result.Score,
		Moves:     moves,
		Started:   sum.Started,
		Ended:     sum.Ended,
	})
}
