package history

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/aurasakura/LightningMcQueen/model"
	kvrepo "github.com/aurasakura/LightningMcQueen/repository/kv"
)

// DefaultKey is the storage key the reservation log lives under.
const DefaultKey = "car_history"

// maxEntries bounds the log; older entries are evicted first.
const maxEntries = 20

const timeLayout = "02 Jan 2006 15:04"

// errors used by controllers

type ErrCode string

const (
	ErrInvalidCar ErrCode = "INVALID_CAR"
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
	// RecordReservation appends a Reserved snapshot of the car, replacing any
	// earlier entry for the same id and moving it to the front.
	RecordReservation(ctx context.Context, car model.Car) (*model.HistoryEntry, error)

	// History lists the persisted log, newest first. Read failures degrade to
	// an empty log; they are never surfaced.
	History(ctx context.Context) ([]model.HistoryEntry, error)
}

type service struct {
	store kvrepo.Store
	key   string
	now   func() time.Time

	// serializes the read-modify-write cycle so two near-simultaneous
	// reservations cannot overwrite each other's write
	mu sync.Mutex
}

func New(store kvrepo.Store, key string, now func() time.Time) Service {
	if key == "" {
		key = DefaultKey
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, key: key, now: now}
}

func (s *service) RecordReservation(ctx context.Context, car model.Car) (*model.HistoryEntry, error) {
	if car.ID <= 0 {
		return nil, makeErr(ErrInvalidCar)
	}
	car.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.read(ctx)

	kept := current[:0]
	for _, e := range current {
		if e.Car.ID != car.ID {
			kept = append(kept, e)
		}
	}

	entry := model.HistoryEntry{
		Car:    car,
		Status: model.StatusReserved,
		Date:   s.now().Format(timeLayout),
	}
	next := append([]model.HistoryEntry{entry}, kept...)
	if len(next) > maxEntries {
		next = next[:maxEntries]
	}

	blob, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, s.key, string(blob)); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *service) History(ctx context.Context) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx), nil
}

// read treats an absent key, a store error and a corrupt blob all as an
// empty log. The UI must never fail on a bad history blob.
func (s *service) read(ctx context.Context) []model.HistoryEntry {
	blob, ok, err := s.store.Get(ctx, s.key)
	if err != nil || !ok {
		return []model.HistoryEntry{}
	}
	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		return []model.HistoryEntry{}
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries
}
