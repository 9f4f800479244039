package game

import "github.com/randomizedcoder/termsnake/internal/monitor"

// SetFood moves the food to p so tests can steer the snake onto it.
func SetFood(g *Game, p monitor.Point) {
	g.food, g.hasFood = p, true
}
