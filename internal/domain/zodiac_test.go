package domain

import (
	"math"
	"testing"
)

func TestNormalizeLongitude(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.999, 359.999},
		{360, 0},
		{370.25, 10.25},
		{725.5, 5.5},
		{-10, 350},
		{-360, 0},
		{-725.5, 354.5},
	}

	for _, c := range cases {
		got := NormalizeLongitude(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeLongitude(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeLongitudeStaysInRange(t *testing.T) {
	// A tiny negative remainder must not round up to exactly 360.
	inputs := []float64{-1e-15, -1e-12, 360 - 1e-13, 1e9 + 0.5, -1e9 - 0.5}
	for _, in := range inputs {
		got := NormalizeLongitude(in)
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeLongitude(%v) = %v, outside [0, 360)", in, got)
		}
	}
}

func TestPositionOf(t *testing.T) {
	cases := []struct {
		lon        float64
		wantSign   string
		wantDegree float64
	}{
		{0, "Aries", 0},
		{15.5, "Aries", 15.5},
		{29.999, "Aries", 29.999},
		{30, "Taurus", 0},
		{200.25, "Libra", 20.25},
		{359.9, "Pisces", 29.9},
		{-5, "Pisces", 25},
		{390, "Taurus", 0},
	}

	for _, c := range cases {
		got := PositionOf(c.lon)
		if got.Sign != c.wantSign {
			t.Errorf("PositionOf(%v).Sign = %q, want %q", c.lon, got.Sign, c.wantSign)
		}
		if math.Abs(got.DegreeInSign-c.wantDegree) > 1e-9 {
			t.Errorf("PositionOf(%v).DegreeInSign = %v, want %v", c.lon, got.DegreeInSign, c.wantDegree)
		}
	}
}

func TestPositionOfReconstructsLongitude(t *testing.T) {
	// signIndex*30 + DegreeInSign must give back the normalized longitude
	// without rounding error.
	for lon := 0.0; lon < 360; lon += 7.3125 {
		pos := PositionOf(lon)
		idx := SignIndex(lon)
		if got := float64(idx)*30 + pos.DegreeInSign; got != lon {
			t.Errorf("longitude %v reconstructed as %v", lon, got)
		}
	}
}

func TestWholeSignHouse(t *testing.T) {
	// Ascendant at 125 degrees sits in Leo (index 4).
	asc := 125.0

	// A body in the ascendant's sign is always house 1.
	if got := WholeSignHouse(120.0, asc); got != 1 {
		t.Fatalf("house for body at 120 = %d, want 1", got)
	}
	if got := WholeSignHouse(149.999, asc); got != 1 {
		t.Fatalf("house for body at 149.999 = %d, want 1", got)
	}

	// Walking every sign from the ascendant's yields houses 1 through 12.
	for step := 0; step < 12; step++ {
		body := float64((4+step)%12)*30 + 15
		if got := WholeSignHouse(body, asc); got != step+1 {
			t.Errorf("house for body at %v = %d, want %d", body, got, step+1)
		}
	}

	// Signs behind the ascendant wrap to the top houses.
	if got := WholeSignHouse(95.0, asc); got != 12 {
		t.Errorf("house for body at 95 = %d, want 12", got)
	}
}

func TestQuadrantHouse(t *testing.T) {
	// Unequal cusps with the 9th house interval wrapping through 0 degrees.
	cusps := [12]float64{100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70}

	cases := []struct {
		lon  float64
		want int
	}{
		{100, 1},   // exactly on cusp 1
		{105, 1},
		{129.999, 1},
		{130, 2},   // boundary belongs to the next house
		{355, 9},   // inside the wrapped interval
		{0, 9},
		{9.999, 9},
		{10, 10},
		{95, 12},
		{460, 1},   // normalized before placement
		{-5, 9},
	}

	for _, c := range cases {
		if got := QuadrantHouse(c.lon, cusps); got != c.want {
			t.Errorf("QuadrantHouse(%v) = %d, want %d", c.lon, got, c.want)
		}
	}
}

func TestQuadrantHouseCoversCircle(t *testing.T) {
	cusps := [12]float64{100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70}

	// Every longitude lands in exactly one house.
	for lon := 0.0; lon < 360; lon += 0.5 {
		got := QuadrantHouse(lon, cusps)
		if got < 1 || got > 12 {
			t.Fatalf("QuadrantHouse(%v) = %d, outside [1, 12]", lon, got)
		}
	}
}
