// Command termsnake plays snake in the terminal.
//
// Usage:
//
//	termsnake [--config termsnake.yaml] [play]
//	termsnake scores --limit 10
//	termsnake replay game.json
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/randomizedcoder/termsnake/internal/config"
)

func main() {
	app := cli.NewApp()
	app.Name = "termsnake"
	app.Usage = "Snake in the terminal"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Value:   "",
			Usage:   "YAML file overlaid on the built-in settings",
			EnvVars: []string{"TERMSNAKE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "player",
			Usage:   "name recorded with the score",
			EnvVars: []string{"TERMSNAKE_PLAYER"},
		},
		&cli.DurationFlag{
			Name:    "frame-interval",
			Value:   100 * time.Millisecond,
			Usage:   "time between snake steps",
			EnvVars: []string{"TERMSNAKE_FRAME_INTERVAL"},
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "board width including the border, 0 fits the terminal",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "board height including the border, 0 fits the terminal",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "food placement seed, 0 seeds from the clock",
		},
		&cli.StringFlag{
			Name:    "score-db",
			Value:   "termsnake.db",
			Usage:   "SQLite high-score file",
			EnvVars: []string{"TERMSNAKE_SCORE_DB"},
		},
		&cli.StringFlag{
			Name:  "replay",
			Usage: "write the session journal to this file",
		},
		&cli.StringFlag{
			Name:    "log-file",
			Value:   "termsnake.log",
			Usage:   "log destination; the terminal belongs to the game",
			EnvVars: []string{"TERMSNAKE_LOG_FILE"},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Value:   false,
			Usage:   "log at debug level",
			EnvVars: []string{"TERMSNAKE_DEBUG"},
		},
	}
	app.Action = Play
	app.Commands = cli.Commands{
		&cli.Command{
			Name:   "play",
			Usage:  "Play a game (default)",
			Action: Play,
		},
		&cli.Command{
			Name:  "scores",
			Usage: "Print the high-score table",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Value: 10,
					Usage: "number of entries to print",
				},
			},
			Action: Scores,
		},
		&cli.Command{
			Name:      "replay",
			Usage:     "Summarize a replay file",
			ArgsUsage: "FILE",
			Action:    Replay,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		log.WithError(err).Fatal("Failed to run the command")
	}
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("player") {
		cfg.Player = c.String("player")
	}
	if c.IsSet("frame-interval") {
		cfg.FrameInterval = c.Duration("frame-interval")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("score-db") {
		cfg.ScoreDB = c.String("score-db")
	}
	if c.IsSet("replay") {
		cfg.ReplayFile = c.String("replay")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	return cfg, cfg.Validate()
}

// setupLogging points logrus at the log file. The caller closes it.
func setupLogging(cfg config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	return f, nil
}
