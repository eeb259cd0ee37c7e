package favorites

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aurasakura/LightningMcQueen/model"
	favrepo "github.com/aurasakura/LightningMcQueen/repository/favorites"
	"github.com/aurasakura/LightningMcQueen/service/catalog"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidCar      ErrCode = "INVALID_CAR"
	ErrAlreadyFavorite ErrCode = "ALREADY_FAVORITE"
	ErrNotFavorite     ErrCode = "NOT_FAVORITE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	Add(ctx context.Context, carID int64) error
	Remove(ctx context.Context, carID int64) error
	// List joins the stored ids against the catalog snapshot, newest favorite
	// first. Ids no longer in the catalog are skipped, not errors.
	List(ctx context.Context) ([]model.Car, error)
}

type service struct {
	r   favrepo.Repo
	cat catalog.Service
}

func New(r favrepo.Repo, cat catalog.Service) Service {
	return &service{r: r, cat: cat}
}

func (s *service) Add(ctx context.Context, carID int64) error {
	if carID <= 0 {
		return makeErr(ErrInvalidCar)
	}
	err := s.r.Add(ctx, carID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return makeErr(ErrAlreadyFavorite)
	}
	return err
}

func (s *service) Remove(ctx context.Context, carID int64) error {
	removed, err := s.r.Remove(ctx, carID)
	if err != nil {
		return err
	}
	if !removed {
		return makeErr(ErrNotFavorite)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Car, error) {
	ids, err := s.r.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	cars := s.cat.Snapshot(ctx)

	out := make([]model.Car, 0, len(ids))
	for _, id := range ids {
		if car := catalog.FindCarByID(cars, id); car != nil {
			out = append(out, *car)
		}
	}
	return out, nil
}
