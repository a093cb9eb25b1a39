// Package save persists run snapshots in a local sqlite database, one row
// per run id. The snapshot itself travels as JSON; a few summary columns are
// duplicated so listing never unmarshals payloads.
package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"balatro-lite/balatro"
)

var ErrNotFound = errors.New("save: run not found")

type Store struct {
	db *sql.DB
}

type RunInfo struct {
	ID         string
	Ante       int
	Round      int
	Money      int
	RoundScore int
	Ended      bool
	UpdatedAt  time.Time
}

func Open(dbPath string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts the snapshot under the given run id.
func (s *Store) Save(ctx context.Context, runID string, snap *balatro.Snapshot) error {
	if strings.TrimSpace(runID) == "" {
		return fmt.Errorf("empty run id")
	}
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	nowMs := time.Now().UTC().UnixMilli()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO run_saves (
    run_id, snapshot_json, ante, round, money, round_score, ended, created_at_ms, updated_at_ms
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (run_id) DO UPDATE
SET
    snapshot_json = excluded.snapshot_json,
    ante = excluded.ante,
    round = excluded.round,
    money = excluded.money,
    round_score = excluded.round_score,
    ended = excluded.ended,
    updated_at_ms = excluded.updated_at_ms
`, runID, string(raw), snap.Ante, snap.Round, snap.Money, snap.RoundScore, boolToInt(snap.Ended), nowMs, nowMs)
	return err
}

func (s *Store) Load(ctx context.Context, runID string) (*balatro.Snapshot, error) {
	if strings.TrimSpace(runID) == "" {
		return nil, ErrNotFound
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var raw []byte
	err := s.db.QueryRowContext(ctx, `
SELECT snapshot_json
FROM run_saves
WHERE run_id = ?
`, runID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var snap balatro.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("corrupt snapshot for run %q: %w", runID, err)
	}
	return &snap, nil
}

// List returns saves newest first.
func (s *Store) List(ctx context.Context, limit int) ([]RunInfo, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT run_id, ante, round, money, round_score, ended, updated_at_ms
FROM run_saves
ORDER BY updated_at_ms DESC, run_id ASC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]RunInfo, 0, limit)
	for rows.Next() {
		var item RunInfo
		var ended int64
		var updatedAtMs int64
		if err := rows.Scan(&item.ID, &item.Ante, &item.Round, &item.Money, &item.RoundScore, &ended, &updatedAtMs); err != nil {
			return nil, err
		}
		item.Ended = ended == 1
		item.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) Delete(ctx context.Context, runID string) error {
	if strings.TrimSpace(runID) == "" {
		return ErrNotFound
	}
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM run_saves WHERE run_id = ?`, runID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS run_saves (
    run_id TEXT PRIMARY KEY,
    snapshot_json TEXT NOT NULL,
    ante INTEGER NOT NULL,
    round INTEGER NOT NULL,
    money INTEGER NOT NULL,
    round_score INTEGER NOT NULL,
    ended INTEGER NOT NULL DEFAULT 0,
    created_at_ms INTEGER NOT NULL,
    updated_at_ms INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_run_saves_updated ON run_saves(updated_at_ms DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
