// Package config holds the runtime settings of a termsnake session.
//
// Settings start from Default, are overlaid from an optional YAML file and
// finally overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/termsnake/internal/game"
	"github.com/randomizedcoder/termsnake/internal/tick"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MinFrameInterval bounds how fast the pacer may tick.
const MinFrameInterval = 10 * time.Millisecond

// Config is the complete set of session settings.
type Config struct {
	// FrameInterval is the time between snake steps.
	FrameInterval time.Duration `yaml:"frame_interval"`

	// Width and Height size the board, border included. Zero means fit
	// the terminal.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed drives food placement. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`

	JournalCapacity int    `yaml:"journal_capacity"`
	ScoreDB         string `yaml:"score_db"`
	ReplayFile      string `yaml:"replay_file"`
	LogFile         string `yaml:"log_file"`
	Player          string `yaml:"player"`
	Debug           bool   `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FrameInterval:   tick.DefaultInterval,
		JournalCapacity: 1024,
		ScoreDB:         "termsnake.db",
		LogFile:         "termsnake.log",
		Player:          defaultPlayer(),
	}
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// Load returns Default overlaid with the YAML file at path. Keys missing
// from the file keep their default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	switch {
	case c.FrameInterval < MinFrameInterval:
		return fmt.Errorf("%w: frame interval %v below %v", ErrInvalid, c.FrameInterval, MinFrameInterval)
	case c.Width != 0 && c.Width < game.MinSide:
		return fmt.Errorf("%w: width %d below %d", ErrInvalid, c.Width, game.MinSide)
	case c.Height != 0 && c.Height < game.MinSide:
		return fmt.Errorf("%w: height %d below %d", ErrInvalid, c.Height, game.MinSide)
	case c.JournalCapacity < 2:
		return fmt.Errorf("%w: journal capacity %d below 2", ErrInvalid, c.JournalCapacity)
	case c.ScoreDB == "":
		return fmt.Errorf("%w: empty score database path", ErrInvalid)
	case c.Player == "":
		return fmt.Errorf("%w: empty player name", ErrInvalid)
	}
	return nil
}

// Board returns the board size for a cols x rows terminal. One row is
// kept for the status line, and a configured size never exceeds the
// terminal.
func (c Config) Board(cols, rows int) (width, height int) {
	width, height = cols, rows-1
	if c.Width != 0 {
		width = min(c.Width, width)
	}
	if c.Height != 0 {
		height = min(c.Height, height)
	}
	return width, height
}
