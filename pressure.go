package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Pressure is force per area, stored in pascals.
type Pressure[T constraints.Float] struct {
	dimensionalScalar[T, unit.Pressure]
}

// NewPressure creates a pressure expressed in the given unit.
func NewPressure[T constraints.Float](value T, u unit.Pressure) Pressure[T] {
	return Pressure[T]{scalarIn(value, u)}
}

// ZeroPressure returns the additive identity pressure.
func ZeroPressure[T constraints.Float]() Pressure[T] { return Pressure[T]{} }

// PressureFrom returns the pressure of force f spread over area a.
func PressureFrom[T constraints.Float](f Force[T], a Area[T]) Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](f.value / a.value)}
}

// Dimensions returns the base dimensions of pressure.
func (Pressure[T]) Dimensions() Dimensions { return Dimensions{Time: -2, Length: -1, Mass: 1} }

// Equal reports whether both pressures hold the same standard-unit
// value. NaN never compares equal.
func (p Pressure[T]) Equal(o Pressure[T]) bool { return p.value == o.value }

// Less reports whether p is lower than o.
func (p Pressure[T]) Less(o Pressure[T]) bool { return p.value < o.value }

// Add returns the sum of two pressures.
func (p Pressure[T]) Add(o Pressure[T]) Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](p.value + o.value)}
}

// Sub returns the difference of two pressures.
func (p Pressure[T]) Sub(o Pressure[T]) Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](p.value - o.value)}
}

// Mul returns p scaled by k.
func (p Pressure[T]) Mul(k T) Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](p.value * k)}
}

// Div returns p divided by k.
func (p Pressure[T]) Div(k T) Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](p.value / k)}
}

// Neg returns p with its sign flipped.
func (p Pressure[T]) Neg() Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](-p.value)}
}

// MulArea returns the force exerted by p over area a.
func (p Pressure[T]) MulArea(a Area[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](p.value * a.value)}
}
