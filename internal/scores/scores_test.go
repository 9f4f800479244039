package scores_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/termsnake/internal/scores"
)

func openStore(t *testing.T) *scores.Store {
	t.Helper()
	s, err := scores.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTopOrder(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	entries := []scores.Entry{
		{Player: "ann", Score: 3, PlayedAt: base},
		{Player: "bob", Score: 9, PlayedAt: base.Add(time.Minute)},
		{Player: "cid", Score: 3, PlayedAt: base.Add(-time.Minute)},
		{Player: "dee", Score: 0, PlayedAt: base.Add(time.Hour)},
	}
	for _, e := range entries {
		id, err := s.Record(ctx, e)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "bob", top[0].Player)
	assert.Equal(t, "cid", top[1].Player, "ties go to the earlier game")
	assert.Equal(t, "ann", top[2].Player)
}

func TestRecordRoundTripsFields(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	want := scores.Entry{
		SessionID: "6f1c2a34-0000-4000-8000-000000000000",
		Player:    "ann",
		Score:     12,
		Length:    13,
		Moves:     40,
		PlayedAt:  time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC),
		Duration:  95 * time.Second,
	}
	id, err := s.Record(ctx, want)
	require.NoError(t, err)
	want.ID = id

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, want, top[0])
}

func TestRecordRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	_, err := s.Record(ctx, scores.Entry{Score: 1})
	assert.ErrorIs(t, err, scores.ErrInvalidEntry)
	_, err = s.Record(ctx, scores.Entry{Player: "ann", Score: -1})
	assert.ErrorIs(t, err, scores.ErrInvalidEntry)
}

func TestTopEmptyAndZero(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	top, err := s.Top(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, top)

	_, err = s.Record(ctx, scores.Entry{Player: "ann", Score: 1})
	require.NoError(t, err)
	top, err = s.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestReopenKeepsScores(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := scores.Open(path)
	require.NoError(t, err)
	_, err = s.Record(ctx, scores.Entry{Player: "ann", Score: 5, PlayedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = scores.Open(path)
	require.NoError(t, err)
	defer s.Close()
	top, err := s.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 5, top[0].Score)
}

func TestCanceledContext(t *testing.T) {
	s := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Record(ctx, scores.Entry{Player: "ann", Score: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
