package catalog

import (
	"context"
	"encoding/json"

	"github.com/aurasakura/LightningMcQueen/model"
	carsrepo "github.com/aurasakura/LightningMcQueen/repository/cars"
	kvrepo "github.com/aurasakura/LightningMcQueen/repository/kv"
)

// CacheKey is the storage key the last fetched car list is cached under.
const CacheKey = "cars_data"

type Service interface {
	// List fetches the current car list. A fetch failure degrades to an empty
	// list; the returned error only reports the degradation cause (fetch or
	// cache write) for logging. The cars are always usable.
	List(ctx context.Context) ([]model.Car, error)

	// Detail resolves one car by id from the cached snapshot, falling back to
	// a live fetch. Not-found is (nil, nil), a normal outcome.
	Detail(ctx context.Context, id int64) (*model.Car, error)

	// Snapshot returns the best-effort current car list without touching the
	// network when the cache has one.
	Snapshot(ctx context.Context) []model.Car
}

type service struct {
	fetcher carsrepo.Repo
	store   kvrepo.Store
	key     string
}

func New(fetcher carsrepo.Repo, store kvrepo.Store, key string) Service {
	if key == "" {
		key = CacheKey
	}
	return &service{fetcher: fetcher, store: store, key: key}
}

func (s *service) List(ctx context.Context) ([]model.Car, error) {
	cars, err := s.fetcher.FetchCars(ctx)
	if err != nil {
		return []model.Car{}, err
	}
	if len(cars) == 0 {
		return []model.Car{}, nil
	}

	blob, err := json.Marshal(cars)
	if err != nil {
		return cars, err
	}
	if err := s.store.Set(ctx, s.key, string(blob)); err != nil {
		return cars, err
	}
	return cars, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Car, error) {
	cars := s.Snapshot(ctx)
	return FindCarByID(cars, id), nil
}

func (s *service) Snapshot(ctx context.Context) []model.Car {
	if cars := s.cached(ctx); len(cars) > 0 {
		return cars
	}
	cars, err := s.List(ctx)
	if err != nil {
		return cars
	}
	return cars
}

// cached reads the KV snapshot; any failure degrades to nil. Records are
// re-normalized so blobs written by an older revision stay comparable.
func (s *service) cached(ctx context.Context) []model.Car {
	blob, ok, err := s.store.Get(ctx, s.key)
	if err != nil || !ok {
		return nil
	}
	var cars []model.Car
	if err := json.Unmarshal([]byte(blob), &cars); err != nil {
		return nil
	}
	for i := range cars {
		cars[i].Normalize()
	}
	return cars
}

// FindCarByID is a linear scan; the first match wins. Nil means the car is
// gone from the source, which callers render as "Car not found".
func FindCarByID(cars []model.Car, id int64) *model.Car {
	for i := range cars {
		if cars[i].ID == id {
			return &cars[i]
		}
	}
	return nil
}
