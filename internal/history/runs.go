package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// Run summarizes one conversion.
type Run struct {
	ID             string
	CreatedAt      time.Time
	Source         string
	Output         string
	Title          string
	TotalEvents    int
	PlacedEvents   int
	SkippedEvents  int
	Overflowed     int
	MaxTracks      int
	DocumentSHA256 string
}

// DocumentDigest returns the hex SHA-256 of a rendered document.
func DocumentDigest(document string) string {
	sum := sha256.Sum256([]byte(document))
	return hex.EncodeToString(sum[:])
}

// timestampLayout is fixed width so created_at sorts chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const runColumns = `id, created_at, source, output, title, total_events, placed_events,
    skipped_events, overflowed_events, max_tracks, document_sha256`

// Record inserts run, assigning a fresh ID and creation time, and returns the
// stored row.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC()

	_, err := s.execWithRetry(
		ctx,
		`INSERT INTO conversions (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(timestampLayout),
		run.Source,
		run.Output,
		run.Title,
		run.TotalEvents,
		run.PlacedEvents,
		run.SkippedEvents,
		run.Overflowed,
		run.MaxTracks,
		run.DocumentSHA256,
	)
	if err != nil {
		return nil, fmt.Errorf("insert conversion: %w", err)
	}
	return s.Get(ctx, run.ID)
}

// Get returns the run with id, or nil when none exists.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+runColumns+` FROM conversions WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get conversion: %w", err)
	}
	return run, nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+runColumns+` FROM conversions ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Clear deletes every recorded run and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("clear conversions: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run       Run
		createdAt string
	)
	if err := row.Scan(
		&run.ID,
		&createdAt,
		&run.Source,
		&run.Output,
		&run.Title,
		&run.TotalEvents,
		&run.PlacedEvents,
		&run.SkippedEvents,
		&run.Overflowed,
		&run.MaxTracks,
		&run.DocumentSHA256,
	); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = parsed
	return &run, nil
}
