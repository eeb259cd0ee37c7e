// model/car_test.go
package model

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"850 DKK/day", 850},
		{"1.125 DKK/day", 1125},
		{"525 DKK/day", 525},
		{"DKK/day", 0},
		{"", 0},
		{"0 DKK/day", 0},
	}
	for _, c := range cases {
		if got := ParsePrice(c.in); got != c.want {
			t.Fatalf("ParsePrice(%q) = %d; want %d", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	car := Car{Price: "1.500 DKK/day"}
	car.Normalize()
	if car.PriceDKK != 1500 {
		t.Fatalf("PriceDKK = %d; want 1500", car.PriceDKK)
	}
}
