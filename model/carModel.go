// model/car.go
package model

import (
	"fmt"
	"strings"
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DirectionsURL builds the Google Maps directions link the reservation
// confirmation hands to the user.
func (c Coords) DirectionsURL() string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", c.Latitude, c.Longitude)
}

// Car is the canonical vehicle record shared by the catalog, filter and
// history components. Price stays a display string ("850 DKK/day"); PriceDKK
// is derived once at ingestion so comparisons never re-parse it.
type Car struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	PriceDKK    int64   `json:"price_dkk,omitempty"`
	Image       string  `json:"image"`
	Coords      Coords  `json:"coords"`
	Information string  `json:"information"`
	Mileage     string  `json:"mileage"`
	Seats       int     `json:"seats"`
	Ratings     float64 `json:"ratings"`
	Usage       int64   `json:"usage"`
}

// ParsePrice extracts the digit characters of a display price and parses the
// concatenation as an integer. "1.125 DKK/day" -> 1125. No digits -> 0.
func ParsePrice(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	var n int64
	for _, r := range digits {
		n = n*10 + int64(r-'0')
	}
	return n
}

// Normalize derives PriceDKK from Price. Called at every storage and
// transport boundary so stale records are coerced, not propagated raw.
func (c *Car) Normalize() {
	c.PriceDKK = ParsePrice(c.Price)
}

// FilterCriteria holds the map screen's range bounds. All bounds inclusive.
// Held in screen-local state only, never persisted.
type FilterCriteria struct {
	MinPrice   int64   `json:"min_price"`
	MaxPrice   int64   `json:"max_price"`
	MinSeats   int     `json:"min_seats"`
	MinRatings float64 `json:"min_ratings"`
}
