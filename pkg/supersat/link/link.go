// Package link relates curves across diagrams that show the same physical
// quantity in different coordinates.
package link

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/supersat-go/pkg/supersat/params"
)

// ErrLengthMismatch indicates temperature and value slices of different
// lengths.
var ErrLengthMismatch = errors.New("temperature and value lengths differ")

// PointFunc maps one (temperature, value) sample into the other diagram's
// coordinate space.
type PointFunc func(t, v float64) (float64, error)

// Link is a stateless pair of pointwise transforms. Inverse may be nil.
type Link struct {
	name    string
	forward PointFunc
	inverse PointFunc
}

// New returns a link from a forward and optional inverse transform.
func New(name string, forward, inverse PointFunc) *Link {
	return &Link{name: name, forward: forward, inverse: inverse}
}

// FrostPoint links the saturation-ratio diagram S_i(T) to the frost-point
// diagram T_F(T).
func FrostPoint() *Link {
	return New("S_i -> T_F", params.FrostPoint, params.SiFromFrostPoint)
}

// Name returns a short description of the transform.
func (l *Link) Name() string { return l.name }

// Forward transforms values sampled at temps. A domain error is returned as
// *params.DomainError tagged with the index of the offending sample.
func (l *Link) Forward(temps, values []float64) ([]float64, error) {
	return apply(l.name, l.forward, temps, values)
}

// HasInverse reports whether Inverse is available.
func (l *Link) HasInverse() bool { return l.inverse != nil }

// Inverse maps values from the secondary diagram back to the primary.
func (l *Link) Inverse(temps, values []float64) ([]float64, error) {
	if l.inverse == nil {
		return nil, fmt.Errorf("link %q has no inverse", l.name)
	}
	return apply(l.name, l.inverse, temps, values)
}

func apply(name string, f PointFunc, temps, values []float64) ([]float64, error) {
	if len(temps) != len(values) {
		return nil, fmt.Errorf("%w: %d temperatures, %d values", ErrLengthMismatch, len(temps), len(values))
	}
	out := make([]float64, len(values))
	for i := range values {
		v, err := f(temps[i], values[i])
		if err != nil {
			var de *params.DomainError
			if errors.As(err, &de) {
				return nil, de.At(i)
			}
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &params.DomainError{Func: name, Value: values[i], Index: i}
		}
		out[i] = v
	}
	return out, nil
}
