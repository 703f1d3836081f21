package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// MassDensity is mass per volume, stored in kilograms per cubic metre.
type MassDensity[T constraints.Float] struct {
	dimensionalScalar[T, unit.MassDensity]
}

// NewMassDensity creates a mass density expressed in the given unit.
func NewMassDensity[T constraints.Float](value T, u unit.MassDensity) MassDensity[T] {
	return MassDensity[T]{scalarIn(value, u)}
}

// ZeroMassDensity returns the additive identity mass density.
func ZeroMassDensity[T constraints.Float]() MassDensity[T] { return MassDensity[T]{} }

// MassDensityFrom returns the density of mass m spread over volume v.
func MassDensityFrom[T constraints.Float](m Mass[T], v Volume[T]) MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](m.value / v.value)}
}

// Dimensions returns the base dimensions of mass density.
func (MassDensity[T]) Dimensions() Dimensions { return Dimensions{Length: -3, Mass: 1} }

// Equal reports whether both densities hold the same standard-unit
// value. NaN never compares equal.
func (d MassDensity[T]) Equal(o MassDensity[T]) bool { return d.value == o.value }

// Less reports whether d is less dense than o.
func (d MassDensity[T]) Less(o MassDensity[T]) bool { return d.value < o.value }

// Add returns the sum of two densities.
func (d MassDensity[T]) Add(o MassDensity[T]) MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](d.value + o.value)}
}

// Sub returns the difference of two densities.
func (d MassDensity[T]) Sub(o MassDensity[T]) MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](d.value - o.value)}
}

// Mul returns d scaled by k.
func (d MassDensity[T]) Mul(k T) MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](d.value * k)}
}

// Div returns d divided by k.
func (d MassDensity[T]) Div(k T) MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](d.value / k)}
}

// Neg returns d with its sign flipped.
func (d MassDensity[T]) Neg() MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](-d.value)}
}

// MulVolume returns the mass of volume v at density d.
func (d MassDensity[T]) MulVolume(v Volume[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](d.value * v.value)}
}
