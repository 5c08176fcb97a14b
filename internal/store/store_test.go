package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	version  int32
	document []byte
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int32) = r.version
	*dest[1].(*json.RawMessage) = r.document
	return nil
}

type fakeDB struct {
	row  fakeRow
	sql  string
	args []any
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.sql, db.args = sql, args
	return db.row
}

func TestLatestSnapshot(t *testing.T) {
	db := &fakeDB{row: fakeRow{version: 7, document: []byte(`{"version": "1"}`)}}
	s := New(db)

	snap, err := s.LatestSnapshot(context.Background(), "proj_1")
	require.NoError(t, err)
	assert.Equal(t, int32(7), snap.Version)
	assert.Equal(t, "proj_1", snap.ProjectID)
	assert.JSONEq(t, `{"version": "1"}`, string(snap.Document))
	assert.Equal(t, []any{"proj_1"}, db.args)
	assert.Contains(t, db.sql, "ORDER BY version DESC")

	doc, err := s.LatestDocument(context.Background(), "proj_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": "1"}`, string(doc))
}

func TestLatestSnapshotErrors(t *testing.T) {
	_, err := New(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}).LatestSnapshot(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("connection reset")
	_, err = New(&fakeDB{row: fakeRow{err: boom}}).LatestDocument(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
