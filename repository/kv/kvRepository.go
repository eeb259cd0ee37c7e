package kvrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the local key-value contract the history log and car cache are
// built on: string keys, single text blobs, last write wins.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

type repo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) Store { return &repo{pool: pool} }

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
CREATE TABLE IF NOT EXISTS app_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	_, err := pool.Exec(ctx, q)
	return err
}

func (r *repo) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `
SELECT value
FROM app_kv
WHERE key = $1`
	var v string
	err := r.pool.QueryRow(ctx, q, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *repo) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO app_kv (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = NOW()`
	_, err := r.pool.Exec(ctx, q, key, value)
	return err
}
