// Package store reads canvas documents saved as project snapshots in Postgres.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("snapshot not found")

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Snapshot struct {
	ProjectID string          `json:"projectId"`
	Version   int32           `json:"version"`
	Document  json.RawMessage `json:"document"`
}

type Store struct {
	db DB
}

func New(db DB) *Store {
	return &Store{db: db}
}

// NewPool connects to Postgres and checks the connection.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

const latestSnapshotSQL = `SELECT version, document FROM snapshots
WHERE project_id = $1
ORDER BY version DESC
LIMIT 1`

// LatestSnapshot returns the newest snapshot of a project.
func (s *Store) LatestSnapshot(ctx context.Context, projectID string) (*Snapshot, error) {
	snap := &Snapshot{ProjectID: projectID}
	err := s.db.QueryRow(ctx, latestSnapshotSQL, projectID).Scan(&snap.Version, &snap.Document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return snap, nil
}

// LatestDocument returns the raw document bytes of the newest snapshot.
func (s *Store) LatestDocument(ctx context.Context, projectID string) ([]byte, error) {
	snap, err := s.LatestSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return snap.Document, nil
}
