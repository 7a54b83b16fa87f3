package kv

import (
	"context"
	"errors"
	"fmt"
	"medreminder/internal/core/domain/storage"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const getEntry = `SELECT value FROM kv_entry WHERE key = $1`

const setEntry = `
INSERT INTO kv_entry (key, value, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`

// PgxKeyValue keeps every key in a single kv_entry row.
type PgxKeyValue struct {
	db DBTX
}

func NewPgxKeyValue(db DBTX) *PgxKeyValue {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxKeyValue{db: db}
}

func (r *PgxKeyValue) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, getEntry, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", storage.ErrStorage, err)
	}
	return value, true, nil
}

func (r *PgxKeyValue) Set(ctx context.Context, key string, value string) error {
	tag, err := r.db.Exec(ctx, setEntry, key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrStorage, err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: unexpected number of affected rows %d", storage.ErrStorage, tag.RowsAffected())
	}
	return nil
}
