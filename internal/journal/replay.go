package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Meta describes the session a replay belongs to.
type Meta struct {
	SessionID string    `json:"session_id"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	Moves     []string  `json:"moves"`
	Started   time.Time `json:"started"`
	Ended     time.Time `json:"ended"`
}

type replay struct {
	Meta
	Dropped uint64  `json:"dropped"`
	Events  []Event `json:"events"`
}

// WriteReplay encodes meta and the drained events as one JSON document.
func (j *Journal) WriteReplay(w io.Writer, meta Meta) error {
	data, err := sonnet.Marshal(replay{
		Meta:    meta,
		Dropped: j.Dropped(),
		Events:  j.Events(),
	})
	if err != nil {
		return fmt.Errorf("journal: encode replay: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("journal: write replay: %w", err)
	}
	return nil
}

// ReadReplay decodes a document written by WriteReplay.
func ReadReplay(data []byte) (Meta, []Event, error) {
	var r replay
	if err := sonnet.Unmarshal(data, &r); err != nil {
		return Meta{}, nil, fmt.Errorf("journal: decode replay: %w", err)
	}
	return r.Meta, r.Events, nil
}
