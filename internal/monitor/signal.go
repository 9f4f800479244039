package monitor

// GameSignal is the event published by input capture and consumed by the
// game loop.
type GameSignal uint8

const (
	SignalNone GameSignal = iota
	SignalExit
	SignalMoveUp
	SignalMoveDown
	SignalMoveLeft
	SignalMoveRight
	// SignalTick advances the snake one cell in its current heading. It is
	// only ever written into an idle slot, see PublishGameTick.
	SignalTick
)

func (s GameSignal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalExit:
		return "exit"
	case SignalMoveUp:
		return "move-up"
	case SignalMoveDown:
		return "move-down"
	case SignalMoveLeft:
		return "move-left"
	case SignalMoveRight:
		return "move-right"
	case SignalTick:
		return "tick"
	default:
		return "unknown"
	}
}

// IsMove reports whether s is one of the four direction signals.
func (s GameSignal) IsMove() bool {
	return s >= SignalMoveUp && s <= SignalMoveRight
}

// RenderSignal is the event published by the game loop and consumed by the
// render loop.
type RenderSignal uint8

const (
	RenderNone RenderSignal = iota
	RenderGameExit
	RenderSnakeRefresh
	RenderSnakeAndFoodRefresh
	RenderSnakeDied
)

func (s RenderSignal) String() string {
	switch s {
	case RenderNone:
		return "none"
	case RenderGameExit:
		return "game-exit"
	case RenderSnakeRefresh:
		return "snake-refresh"
	case RenderSnakeAndFoodRefresh:
		return "snake-and-food-refresh"
	case RenderSnakeDied:
		return "snake-died"
	default:
		return "unknown"
	}
}

// Point is a cell on the board. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Snapshot is the read-only view of game state handed to the renderer with
// a render signal. It is a value; the game keeps mutating its own state
// after publishing.
type Snapshot struct {
	Head Point

	// Tail is the cell vacated by the last move. Valid only if HasTail.
	Tail    Point
	HasTail bool

	// Food is the current food cell. Valid only if HasFood.
	Food    Point
	HasFood bool

	Score int
	Alive bool
}
