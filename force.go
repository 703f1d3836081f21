package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Force is the magnitude of a push or pull, stored in newtons.
type Force[T constraints.Float] struct {
	dimensionalScalar[T, unit.Force]
}

// NewForce creates a force expressed in the given unit.
func NewForce[T constraints.Float](value T, u unit.Force) Force[T] {
	return Force[T]{scalarIn(value, u)}
}

// ZeroForce returns the additive identity force.
func ZeroForce[T constraints.Float]() Force[T] { return Force[T]{} }

// ForceFrom returns the force needed to accelerate mass m at a.
func ForceFrom[T constraints.Float](m Mass[T], a Acceleration[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](m.value * a.value)}
}

// Dimensions returns the base dimensions of force.
func (Force[T]) Dimensions() Dimensions { return Dimensions{Time: -2, Length: 1, Mass: 1} }

// Equal reports whether both forces hold the same standard-unit value.
// NaN never compares equal.
func (f Force[T]) Equal(o Force[T]) bool { return f.value == o.value }

// Less reports whether f is weaker than o.
func (f Force[T]) Less(o Force[T]) bool { return f.value < o.value }

// Add returns the sum of two forces.
func (f Force[T]) Add(o Force[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](f.value + o.value)}
}

// Sub returns the difference of two forces.
func (f Force[T]) Sub(o Force[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](f.value - o.value)}
}

// Mul returns f scaled by k.
func (f Force[T]) Mul(k T) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](f.value * k)}
}

// Div returns f divided by k.
func (f Force[T]) Div(k T) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](f.value / k)}
}

// Neg returns f with its sign flipped.
func (f Force[T]) Neg() Force[T] {
	return Force[T]{scalarOf[T, unit.Force](-f.value)}
}

// MulLength returns the energy of applying f along length l.
func (f Force[T]) MulLength(l Length[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](f.value * l.value)}
}

// DivMass returns the acceleration of mass m under f.
func (f Force[T]) DivMass(m Mass[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](f.value / m.value)}
}

// DivAcceleration returns the mass that f accelerates at a.
func (f Force[T]) DivAcceleration(a Acceleration[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](f.value / a.value)}
}

// DivArea returns the pressure of f spread over area a.
func (f Force[T]) DivArea(a Area[T]) Pressure[T] {
	return Pressure[T]{scalarOf[T, unit.Pressure](f.value / a.value)}
}

// DivPressure returns the area over which pressure p exerts f.
func (f Force[T]) DivPressure(p Pressure[T]) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](f.value / p.value)}
}
