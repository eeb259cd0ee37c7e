// service/filter/filter_service_test.go
package filter

import (
	"reflect"
	"testing"

	"github.com/aurasakura/LightningMcQueen/model"
)

func fleet() []model.Car {
	return []model.Car{
		{ID: 1, Title: "Tesla Model 3", Price: "850 DKK/day", Seats: 5, Ratings: 4.5, Usage: 320},
		{ID: 2, Title: "Nissan Leaf", Price: "700 DKK/day", Seats: 4, Ratings: 4.2, Usage: 540},
		{ID: 3, Title: "Audi e-tron", Price: "1.500 DKK/day", Seats: 5, Ratings: 4.8, Usage: 120},
		{ID: 4, Title: "Renault Zoe", Price: "488 DKK/day", Seats: 4, Ratings: 3.9, Usage: 610},
		{ID: 5, Title: "Polestar 2", Price: "1.200 DKK/day", Seats: 5, Ratings: 4.6, Usage: 210},
	}
}

func ids(cars []model.Car) []int64 {
	out := make([]int64, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}

func TestApply_TwoCarScenario(t *testing.T) {
	cars := []model.Car{
		{ID: 1, Price: "850 DKK/day", Seats: 5, Ratings: 4.5},
		{ID: 2, Price: "700 DKK/day", Seats: 4, Ratings: 4.2},
	}
	crit := model.FilterCriteria{MinPrice: 0, MaxPrice: 800, MinSeats: 1, MinRatings: 1}

	got := Apply(cars, crit)
	if !reflect.DeepEqual(ids(got), []int64{2}) {
		t.Fatalf("got ids %v; want [2]", ids(got))
	}
}

func TestApply_InclusiveBounds(t *testing.T) {
	cars := []model.Car{{ID: 1, Price: "850 DKK/day", Seats: 4, Ratings: 4.0}}
	crit := model.FilterCriteria{MinPrice: 850, MaxPrice: 850, MinSeats: 4, MinRatings: 4.0}

	if got := Apply(cars, crit); len(got) != 1 {
		t.Fatalf("boundary values must pass; got %v", got)
	}
}

func TestApply_ThousandsSeparator(t *testing.T) {
	// "1.500 DKK/day" parses as 1500, so a 1000 cap excludes it
	cars := fleet()
	crit := model.FilterCriteria{MinPrice: 0, MaxPrice: 1000, MinSeats: 1, MinRatings: 0}

	got := Apply(cars, crit)
	if !reflect.DeepEqual(ids(got), []int64{1, 2, 4}) {
		t.Fatalf("got ids %v; want [1 2 4]", ids(got))
	}
}

func TestApply_PureAndStable(t *testing.T) {
	cars := fleet()
	before := ids(cars)
	crit := DefaultCriteria()

	a := Apply(cars, crit)
	b := Apply(cars, crit)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same input must produce identical output")
	}
	if !reflect.DeepEqual(ids(cars), before) {
		t.Fatal("input slice was mutated")
	}
	for i := 1; i < len(a); i++ {
		if indexOf(before, a[i-1].ID) > indexOf(before, a[i].ID) {
			t.Fatal("relative input order not preserved")
		}
	}
}

func indexOf(ids []int64, id int64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func TestApply_EmptyResults(t *testing.T) {
	if got := Apply(nil, DefaultCriteria()); len(got) != 0 {
		t.Fatalf("empty input must yield empty output, got %v", got)
	}
	crit := model.FilterCriteria{MinPrice: 0, MaxPrice: 1, MinSeats: 99, MinRatings: 5}
	if got := Apply(fleet(), crit); len(got) != 0 {
		t.Fatalf("no-match criteria must yield empty output, got %v", got)
	}
}

func TestSearch(t *testing.T) {
	got := Search(fleet(), "  TESLA ")
	if !reflect.DeepEqual(ids(got), []int64{1}) {
		t.Fatalf("got ids %v; want [1]", ids(got))
	}
	if got := Search(fleet(), ""); len(got) != 5 {
		t.Fatalf("empty query keeps everything, got %d", len(got))
	}
}

func TestRank(t *testing.T) {
	cheapest := Rank(fleet(), RankCheapest)
	if !reflect.DeepEqual(ids(cheapest), []int64{4, 2, 1, 5}) {
		t.Fatalf("cheapest: got ids %v; want [4 2 1 5]", ids(cheapest))
	}

	rated := Rank(fleet(), RankTopRated)
	if !reflect.DeepEqual(ids(rated), []int64{3, 5, 1, 2}) {
		t.Fatalf("top rated: got ids %v; want [3 5 1 2]", ids(rated))
	}

	used := Rank(fleet(), RankMostUsed)
	if !reflect.DeepEqual(ids(used), []int64{4, 2, 1, 5}) {
		t.Fatalf("most used: got ids %v; want [4 2 1 5]", ids(used))
	}

	all := Rank(fleet(), RankMode("bogus"))
	if len(all) != 5 {
		t.Fatalf("unknown mode must pass through, got %d cars", len(all))
	}
}
