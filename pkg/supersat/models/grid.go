// Package models defines the data model shared by diagrams, recipes and the
// session: the temperature grid, artifacts, styles and listings.
package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid indicates grid bounds or sample count that cannot produce a
// monotonically increasing grid.
var ErrInvalidGrid = errors.New("invalid temperature grid")

const (
	// DefaultGridMin is the lower grid bound in K.
	DefaultGridMin = 235.0
	// DefaultGridMax is the upper grid bound in K.
	DefaultGridMax = 273.0
	// DefaultGridPoints is the number of grid samples.
	DefaultGridPoints = 100
)

// Grid is an immutable, strictly increasing sequence of temperatures in K.
// The zero value is an empty grid.
type Grid struct {
	values []float64
}

// NewGrid returns n linearly spaced samples from min to max inclusive.
func NewGrid(min, max float64, n int) (Grid, error) {
	if n < 2 {
		return Grid{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidGrid, n)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return Grid{}, fmt.Errorf("%w: non-finite bounds [%g, %g]", ErrInvalidGrid, min, max)
	}
	if min >= max {
		return Grid{}, fmt.Errorf("%w: min %g must be below max %g", ErrInvalidGrid, min, max)
	}
	values := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range values {
		values[i] = min + float64(i)*step
	}
	values[n-1] = max
	return Grid{values: values}, nil
}

// DefaultGrid returns the 100-point grid over [235 K, 273 K].
func DefaultGrid() Grid {
	g, _ := NewGrid(DefaultGridMin, DefaultGridMax, DefaultGridPoints)
	return g
}

// Len returns the number of samples.
func (g Grid) Len() int { return len(g.values) }

// At returns the i-th temperature.
func (g Grid) At(i int) float64 { return g.values[i] }

// Values returns a copy of the samples.
func (g Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)
	return out
}

// Min returns the first sample, or 0 for an empty grid.
func (g Grid) Min() float64 {
	if len(g.values) == 0 {
		return 0
	}
	return g.values[0]
}

// Max returns the last sample, or 0 for an empty grid.
func (g Grid) Max() float64 {
	if len(g.values) == 0 {
		return 0
	}
	return g.values[len(g.values)-1]
}

// Contains reports whether t lies within the grid bounds.
func (g Grid) Contains(t float64) bool {
	return len(g.values) > 0 && t >= g.Min() && t <= g.Max()
}

// Map evaluates f at every sample. The first error is returned together with
// the index of the failing sample.
func (g Grid) Map(f func(t float64) (float64, error)) ([]float64, int, error) {
	out := make([]float64, len(g.values))
	for i, t := range g.values {
		v, err := f(t)
		if err != nil {
			return nil, i, err
		}
		out[i] = v
	}
	return out, -1, nil
}
