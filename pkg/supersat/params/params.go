// Package params provides closed-form parametrizations for water and ice
// thermodynamics below the melting point.
//
// All functions are pure. Temperatures are in kelvin, pressures in pascal
// unless the name says otherwise, radii in metres. Saturation ratios are
// dimensionless.
package params

import (
	"fmt"
	"math"
)

const (
	// Avogadro is the Avogadro constant in mol^-1.
	Avogadro = 6.02214076e23
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.380649e-23
	// MolarMassWater is the molar mass of water in kg/mol.
	MolarMassWater = 18.01528e-3
	// RhoIce is the density of hexagonal ice in kg/m3.
	RhoIce = 916.7
	// P0 is the reference pressure used by the P0 parametrizations, in MPa.
	P0 = 0.1
)

// DomainError reports an input outside the domain of a formula, such as
// the logarithm of a non-positive saturation ratio.
type DomainError struct {
	// Func is the name of the formula that rejected the input.
	Func string
	// Value is the offending input.
	Value float64
	// Index is the sample index the value came from, or -1 when the
	// error was raised for a scalar evaluation.
	Index int
}

func (e *DomainError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: value %g out of domain at sample %d", e.Func, e.Value, e.Index)
	}
	return fmt.Sprintf("%s: value %g out of domain", e.Func, e.Value)
}

// At returns a copy of the error tagged with a sample index.
func (e *DomainError) At(index int) *DomainError {
	tagged := *e
	tagged.Index = index
	return &tagged
}

func domainErr(fn string, v float64) *DomainError {
	return &DomainError{Func: fn, Value: v, Index: -1}
}

// logPositive is math.Log restricted to finite, strictly positive inputs.
func logPositive(fn string, v float64) (float64, error) {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0, domainErr(fn, v)
	}
	return math.Log(v), nil
}
