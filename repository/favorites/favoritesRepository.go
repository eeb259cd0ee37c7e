package favrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo interface {
	Add(ctx context.Context, carID int64) error
	Remove(ctx context.Context, carID int64) (bool, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type repo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) Repo { return &repo{pool: pool} }

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
CREATE TABLE IF NOT EXISTS favorite_cars (
	car_id     BIGINT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	_, err := pool.Exec(ctx, q)
	return err
}

func (r *repo) Add(ctx context.Context, carID int64) error {
	const q = `
INSERT INTO favorite_cars (car_id)
VALUES ($1)`
	_, err := r.pool.Exec(ctx, q, carID)
	return err
}

func (r *repo) Remove(ctx context.Context, carID int64) (bool, error) {
	const q = `
DELETE FROM favorite_cars
WHERE car_id = $1`
	res, err := r.pool.Exec(ctx, q, carID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *repo) ListIDs(ctx context.Context) ([]int64, error) {
	const q = `
SELECT car_id
FROM favorite_cars
ORDER BY created_at DESC, car_id DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
