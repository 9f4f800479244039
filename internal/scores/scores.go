// Package scores keeps the high-score table in a SQLite file.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

const tableName = "scores"

// ErrInvalidEntry is returned by Record for entries that cannot be stored.
var ErrInvalidEntry = errors.New("scores: invalid entry")

// Entry is one finished game.
type Entry struct {
	ID        int64
	SessionID string
	Player    string
	Score     int
	Length    int
	Moves     int
	PlayedAt  time.Time
	Duration  time.Duration
}

// Store is a handle on the score database. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
}

// Open opens or creates the database at path and makes sure the table
// exists. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("scores: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	columns := []string{
		"id INTEGER NOT NULL PRIMARY KEY",
		"session_id TEXT",
		"player TEXT",
		"score INTEGER",
		"length INTEGER",
		"moves INTEGER",
		"played_at INTEGER",
		"duration_ns INTEGER",
	}
	statements := []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(columns, ",")),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_rank_idx on %s (score DESC, played_at ASC)", tableName, tableName),
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.WithFields(log.Fields{"err": err, "sql": stmt}).Error("Failed to create score table")
			db.Close()
			return nil, fmt.Errorf("scores: init %s: %w", path, err)
		}
	}
	return &Store{db: db, dialect: goqu.Dialect("sqlite3")}, nil
}

// Record stores e and returns its row id.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.Player == "" || e.Score < 0 {
		return 0, fmt.Errorf("%w: player %q score %d", ErrInvalidEntry, e.Player, e.Score)
	}
	query, args, err := s.dialect.Insert(tableName).Rows(goqu.Record{
		"session_id":  e.SessionID,
		"player":      e.Player,
		"score":       e.Score,
		"length":      e.Length,
		"moves":       e.Moves,
		"played_at":   e.PlayedAt.UnixNano(),
		"duration_ns": int64(e.Duration),
	}).Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("scores: build insert: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("scores: insert: %w", err)
	}
	return res.LastInsertId()
}

// Top returns up to n entries, best score first. Ties go to the earlier
// game.
func (s *Store) Top(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	query, args, err := s.dialect.From(tableName).
		Select("id", "session_id", "player", "score", "length", "moves", "played_at", "duration_ns").
		Order(goqu.C("score").Desc(), goqu.C("played_at").Asc(), goqu.C("id").Asc()).
		Limit(uint(n)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("scores: build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scores: select: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, n)
	for rows.Next() {
		var e Entry
		var playedAt, duration int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Player, &e.Score, &e.Length, &e.Moves, &playedAt, &duration); err != nil {
			return nil, fmt.Errorf("scores: scan: %w", err)
		}
		e.PlayedAt = time.Unix(0, playedAt).UTC()
		e.Duration = time.Duration(duration)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: rows: %w", err)
	}
	return entries, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
