package models

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(235, 273, 50)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Len() != 50 {
		t.Errorf("Expected 50 samples, got %d", g.Len())
	}
	if g.Min() != 235 || g.Max() != 273 {
		t.Errorf("Expected bounds [235, 273], got [%v, %v]", g.Min(), g.Max())
	}
	for i := 1; i < g.Len(); i++ {
		if g.At(i) <= g.At(i-1) {
			t.Fatalf("grid not increasing at %d: %v <= %v", i, g.At(i), g.At(i-1))
		}
	}
}

func TestNewGridInvalid(t *testing.T) {
	tests := []struct {
		min, max float64
		n        int
	}{
		{235, 273, 1},
		{273, 235, 10},
		{250, 250, 10},
		{math.NaN(), 273, 10},
		{235, math.Inf(1), 10},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.min, tt.max, tt.n)
		if !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewGrid(%v, %v, %d) = %v, expected ErrInvalidGrid", tt.min, tt.max, tt.n, err)
		}
	}
}

func TestGridValuesIsCopy(t *testing.T) {
	g := DefaultGrid()
	v := g.Values()
	v[0] = -1
	if g.At(0) != DefaultGridMin {
		t.Errorf("mutating Values() changed the grid: At(0) = %v", g.At(0))
	}
}

func TestGridMap(t *testing.T) {
	g, _ := NewGrid(240, 250, 11)
	boom := errors.New("boom")
	_, idx, err := g.Map(func(temp float64) (float64, error) {
		if temp > 244.5 {
			return 0, boom
		}
		return temp, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if idx != 5 {
		t.Errorf("expected failing index 5, got %d", idx)
	}
}

func TestParseListFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected ListFilter
		wantErr  bool
	}{
		{"all", ListAll, false},
		{"visible", ListVisible, false},
		{"hidden", ListHidden, false},
		{"", ListAll, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := ParseListFilter(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseListFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseListFilter(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestStyleFallbacks(t *testing.T) {
	s := Style{Color: "nope"}
	if s.RGB() != Palette[DefaultColor] {
		t.Errorf("unknown colour should fall back to %s", DefaultColor)
	}
	if s.StrokeWidth() != 1 {
		t.Errorf("StrokeWidth() = %v, expected 1", s.StrokeWidth())
	}
	if got := (RGB{211, 211, 211}).Hex(); got != "D3D3D3" {
		t.Errorf("Hex() = %q, expected D3D3D3", got)
	}
}
