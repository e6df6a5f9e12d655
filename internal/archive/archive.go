// Package archive keeps a write-only transcript of every adventure in Supabase.
// Rows are never read back; a new game always starts from scratch.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GO-dungeon/internal/game"

	supa "github.com/supabase-community/supabase-go"
)

// DefaultTable is used when no table name is configured.
const DefaultTable = "dm_transcript"

// Row matches the transcript table in Supabase.
type Row struct {
	ID        int64     `json:"id,omitempty"`
	SessionID string    `json:"session_id"`
	Seq       int       `json:"seq"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Supabase inserts transcript rows through the PostgREST API.
type Supabase struct {
	client *supa.Client
	table  string
	now    func() time.Time
}

// NewSupabase connects to the project at url with the given service key.
func NewSupabase(url, key, table string) (*Supabase, error) {
	if url == "" || key == "" {
		return nil, errors.New("supabase url and key are required")
	}
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Supabase: %w", err)
	}
	if table == "" {
		table = DefaultTable
	}
	return &Supabase{client: client, table: table, now: time.Now}, nil
}

// Record implements game.Recorder. The PostgREST client does not take a
// context, so ctx is only checked before the insert.
func (s *Supabase) Record(ctx context.Context, entries []game.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.now().UTC()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			SessionID: e.SessionID,
			Seq:       e.Seq,
			Role:      string(e.Role),
			Text:      e.Text,
			CreatedAt: now,
		})
	}

	var inserted []Row
	_, err := s.client.From(s.table).Insert(rows, false, "", "", "").ExecuteTo(&inserted)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", s.table, err)
	}
	return nil
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Record(context.Context, []game.Entry) error { return nil }

var (
	_ game.Recorder = (*Supabase)(nil)
	_ game.Recorder = Nop{}
)
