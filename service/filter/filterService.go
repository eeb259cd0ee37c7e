package filter

import (
	"sort"
	"strings"

	"github.com/aurasakura/LightningMcQueen/model"
)

// rankLimit caps the ranked views the discover screen shows.
const rankLimit = 4

type RankMode string

const (
	RankCheapest RankMode = "cheapest"
	RankTopRated RankMode = "top_rated"
	RankMostUsed RankMode = "most_used"
)

// DefaultCriteria mirrors the map screen's filter sheet defaults.
func DefaultCriteria() model.FilterCriteria {
	return model.FilterCriteria{MinPrice: 0, MaxPrice: 5000, MinSeats: 1, MinRatings: 1}
}

// Apply evaluates the range predicates against every car. All bounds are
// inclusive and the relative order of the input is preserved. Pure: the
// input slice is never mutated.
func Apply(cars []model.Car, c model.FilterCriteria) []model.Car {
	out := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		price := priceOf(car)
		if price < c.MinPrice || price > c.MaxPrice {
			continue
		}
		if car.Seats < c.MinSeats {
			continue
		}
		if car.Ratings < c.MinRatings {
			continue
		}
		out = append(out, car)
	}
	return out
}

// Search keeps cars whose title contains q, case-insensitively. An empty
// query keeps everything.
func Search(cars []model.Car, q string) []model.Car {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		if q == "" || strings.Contains(strings.ToLower(car.Title), q) {
			out = append(out, car)
		}
	}
	return out
}

// Rank returns the top cars for a discover chip: the 4 cheapest, the 4 best
// rated, or the 4 most used. An unknown mode returns the input unchanged.
func Rank(cars []model.Car, mode RankMode) []model.Car {
	var less func(a, b model.Car) bool
	switch mode {
	case RankCheapest:
		less = func(a, b model.Car) bool { return priceOf(a) < priceOf(b) }
	case RankTopRated:
		less = func(a, b model.Car) bool { return a.Ratings > b.Ratings }
	case RankMostUsed:
		less = func(a, b model.Car) bool { return a.Usage > b.Usage }
	default:
		return cars
	}

	ranked := make([]model.Car, len(cars))
	copy(ranked, cars)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > rankLimit {
		ranked = ranked[:rankLimit]
	}
	return ranked
}

// priceOf prefers the normalized value; records that skipped ingestion
// (hand-built test data, stale blobs) fall back to a fresh parse.
func priceOf(c model.Car) int64 {
	if c.PriceDKK != 0 {
		return c.PriceDKK
	}
	return model.ParsePrice(c.Price)
}
