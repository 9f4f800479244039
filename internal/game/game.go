// Package game owns the snake, the food and the score, and turns game
// signals into render signals.
//
// The game goroutine is the only writer of this state. The renderer sees
// it only through the monitor.Snapshot values published with each render
// signal.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	eapache "github.com/eapache/queue"
	log "github.com/sirupsen/logrus"

	"github.com/randomizedcoder/termsnake/internal/journal"
	"github.com/randomizedcoder/termsnake/internal/monitor"
	"github.com/randomizedcoder/termsnake/internal/queue"
)

// MinSide is the smallest board side: a border on each edge and a 2x2
// playing field.
const MinSide = 4

// ErrBoardTooSmall is returned by New for boards below MinSide.
var ErrBoardTooSmall = errors.New("game: board too small")

// Config sizes and seeds a game.
type Config struct {
	// Width and Height include the one-cell border.
	Width  int
	Height int
	Seed   int64
}

// Move is one accepted heading change.
type Move struct {
	Signal monitor.GameSignal
	Head   monitor.Point
	Score  int
}

// Result summarizes a finished game.
type Result struct {
	Score  int
	Alive  bool
	Length int
	Moves  []Move
}

// Game is the snake game state machine.
type Game struct {
	cfg Config
	mon *monitor.Monitor
	rec journal.Recorder
	rng *rand.Rand

	// body holds monitor.Point values, oldest (tail) first.
	body     *eapache.Queue
	occupied map[monitor.Point]struct{}

	head    monitor.Point
	heading monitor.GameSignal
	food    monitor.Point
	hasFood bool
	score   int
	alive   bool

	vacated    monitor.Point
	hasVacated bool

	history *queue.Ring[Move]
}

// New creates a game with a one-cell snake in the middle of the board,
// heading right, and one food item.
func New(cfg Config, mon *monitor.Monitor, rec journal.Recorder) (*Game, error) {
	if cfg.Width < MinSide || cfg.Height < MinSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, cfg.Width, cfg.Height)
	}
	g := &Game{
		cfg:      cfg,
		mon:      mon,
		rec:      rec,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		body:     eapache.New(),
		occupied: make(map[monitor.Point]struct{}),
		heading:  monitor.SignalMoveRight,
		alive:    true,
		history:  queue.NewRing[Move](),
	}
	g.push(monitor.Point{X: cfg.Width / 2, Y: cfg.Height / 2})
	g.placeFood()
	return g, nil
}

// Run publishes the initial frame, then applies game signals until EXIT.
// It publishes GAME_EXIT before returning.
func (g *Game) Run() Result {
	g.mon.PublishRenderSignal(monitor.RenderSnakeAndFoodRefresh, g.Snapshot())
	for {
		sig := g.mon.AwaitGameSignal()
		if sig == monitor.SignalExit {
			g.record(journal.KindExit)
			g.mon.PublishRenderSignal(monitor.RenderGameExit, g.Snapshot())
			log.WithFields(log.Fields{"score": g.score, "alive": g.alive}).Debug("Game loop exited")
			return g.Result()
		}
		if rs, ok := g.Apply(sig); ok {
			g.mon.PublishRenderSignal(rs, g.Snapshot())
		}
	}
}

// Apply advances the game for one signal. It reports the render signal
// the change calls for, or false if nothing visible changed. EXIT is not
// handled here; Run owns shutdown.
func (g *Game) Apply(sig monitor.GameSignal) (monitor.RenderSignal, bool) {
	if !g.alive {
		return monitor.RenderNone, false
	}
	g.hasVacated = false

	switch {
	case sig == monitor.SignalTick:
		return g.step(), true
	case sig.IsMove():
		if g.body.Length() > 1 && sig == opposite(g.heading) {
			return monitor.RenderNone, false
		}
		g.heading = sig
		g.history.Push(Move{Signal: sig, Head: g.head, Score: g.score})
		return g.step(), true
	default:
		return monitor.RenderNone, false
	}
}

func (g *Game) step() monitor.RenderSignal {
	next := g.head
	switch g.heading {
	case monitor.SignalMoveUp:
		next.Y--
	case monitor.SignalMoveDown:
		next.Y++
	case monitor.SignalMoveLeft:
		next.X--
	case monitor.SignalMoveRight:
		next.X++
	}

	eats := g.hasFood && next == g.food
	tail := g.body.Peek().(monitor.Point)
	_, taken := g.occupied[next]
	// The tail cell frees up this step unless the snake is growing.
	hit := taken && (eats || next != tail)

	if !g.inside(next) || hit {
		g.alive = false
		g.record(journal.KindDeath)
		log.WithFields(log.Fields{"x": next.X, "y": next.Y, "score": g.score}).Debug("Snake died")
		return monitor.RenderSnakeDied
	}

	if !eats {
		g.pop()
	}
	g.push(next)
	g.record(journal.KindMove)

	if eats {
		g.score++
		g.placeFood()
		g.record(journal.KindFood)
		return monitor.RenderSnakeAndFoodRefresh
	}
	return monitor.RenderSnakeRefresh
}

func (g *Game) push(p monitor.Point) {
	g.body.Add(p)
	g.occupied[p] = struct{}{}
	g.head = p
}

func (g *Game) pop() {
	p := g.body.Remove().(monitor.Point)
	delete(g.occupied, p)
	g.vacated, g.hasVacated = p, true
}

func (g *Game) inside(p monitor.Point) bool {
	return p.X >= 1 && p.X <= g.cfg.Width-2 && p.Y >= 1 && p.Y <= g.cfg.Height-2
}

// placeFood puts food on a random free interior cell. A few random draws
// cover the common case; a scan handles a nearly full board. With no free
// cell left the board simply has no food.
func (g *Game) placeFood() {
	w, h := g.cfg.Width-2, g.cfg.Height-2
	for i := 0; i < 16; i++ {
		p := monitor.Point{X: 1 + g.rng.Intn(w), Y: 1 + g.rng.Intn(h)}
		if _, taken := g.occupied[p]; !taken {
			g.food, g.hasFood = p, true
			return
		}
	}
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			p := monitor.Point{X: x, Y: y}
			if _, taken := g.occupied[p]; !taken {
				g.food, g.hasFood = p, true
				return
			}
		}
	}
	g.hasFood = false
}

func (g *Game) record(kind string) {
	if g.rec == nil {
		return
	}
	g.rec.Record(journal.ProducerGame, journal.Event{
		Kind:  kind,
		X:     g.head.X,
		Y:     g.head.Y,
		Score: g.score,
	})
}

// Snapshot returns the current state as a render snapshot.
func (g *Game) Snapshot() monitor.Snapshot {
	return monitor.Snapshot{
		Head:    g.head,
		Tail:    g.vacated,
		HasTail: g.hasVacated,
		Food:    g.food,
		HasFood: g.hasFood,
		Score:   g.score,
		Alive:   g.alive,
	}
}

// Body returns the snake's cells, tail first.
func (g *Game) Body() []monitor.Point {
	out := make([]monitor.Point, g.body.Length())
	for i := range out {
		out[i] = g.body.Get(i).(monitor.Point)
	}
	return out
}

// Result returns the game summary so far.
func (g *Game) Result() Result {
	return Result{
		Score:  g.score,
		Alive:  g.alive,
		Length: g.body.Length(),
		Moves:  g.history.Slice(),
	}
}

func opposite(s monitor.GameSignal) monitor.GameSignal {
	switch s {
	case monitor.SignalMoveUp:
		return monitor.SignalMoveDown
	case monitor.SignalMoveDown:
		return monitor.SignalMoveUp
	case monitor.SignalMoveLeft:
		return monitor.SignalMoveRight
	case monitor.SignalMoveRight:
		return monitor.SignalMoveLeft
	default:
		return monitor.SignalNone
	}
}
