package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/randomizedcoder/termsnake/internal/journal"
	"github.com/randomizedcoder/termsnake/internal/scores"
)

// Scores prints the high-score table.
func Scores(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := scores.Open(cfg.ScoreDB)
	if err != nil {
		return err
	}
	defer store.Close()

	top, err := store.Top(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(top) == 0 {
		fmt.Println("No scores yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPLAYER\tSCORE\tLENGTH\tMOVES\tDURATION\tPLAYED")
	for i, e := range top {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%v\t%s\n",
			i+1, e.Player, e.Score, e.Length, e.Moves,
			e.Duration.Round(time.Second/10), e.PlayedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// Replay prints a summary of a replay file.
func Replay(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("replay: missing FILE argument")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	meta, events, err := journal.ReadReplay(data)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.Kind]++
	}
	fmt.Printf("Session:  %s\n", meta.SessionID)
	fmt.Printf("Player:   %s\n", meta.Player)
	fmt.Printf("Score:    %d\n", meta.Score)
	fmt.Printf("Duration: %v\n", meta.Ended.Sub(meta.Started))
	fmt.Printf("Moves:    %d\n", len(meta.Moves))
	fmt.Printf("Events:   %d (keys %d, steps %d, food %d, deaths %d)\n",
		len(events), counts[journal.KindKey], counts[journal.KindMove],
		counts[journal.KindFood], counts[journal.KindDeath])
	return nil
}
