package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Mass is an amount of matter, stored in kilograms.
type Mass[T constraints.Float] struct {
	dimensionalScalar[T, unit.Mass]
}

// NewMass creates a mass expressed in the given unit.
func NewMass[T constraints.Float](value T, u unit.Mass) Mass[T] {
	return Mass[T]{scalarIn(value, u)}
}

// ZeroMass returns the additive identity mass.
func ZeroMass[T constraints.Float]() Mass[T] { return Mass[T]{} }

// MassFrom returns the mass transferred at rate r over time t.
func MassFrom[T constraints.Float](r MassRate[T], t Time[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](r.value * t.value)}
}

// MassFromDensity returns the mass of volume v at density d.
func MassFromDensity[T constraints.Float](d MassDensity[T], v Volume[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](d.value * v.value)}
}

// Dimensions returns the base dimensions of mass.
func (Mass[T]) Dimensions() Dimensions { return Dimensions{Mass: 1} }

// Equal reports whether both masses hold the same standard-unit value.
// NaN never compares equal.
func (m Mass[T]) Equal(o Mass[T]) bool { return m.value == o.value }

// Less reports whether m is lighter than o.
func (m Mass[T]) Less(o Mass[T]) bool { return m.value < o.value }

// Add returns the sum of two masses.
func (m Mass[T]) Add(o Mass[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](m.value + o.value)}
}

// Sub returns the difference of two masses.
func (m Mass[T]) Sub(o Mass[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](m.value - o.value)}
}

// Mul returns m scaled by k.
func (m Mass[T]) Mul(k T) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](m.value * k)}
}

// Div returns m divided by k.
func (m Mass[T]) Div(k T) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](m.value / k)}
}

// Neg returns m with its sign flipped.
func (m Mass[T]) Neg() Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](-m.value)}
}

// MulAcceleration returns the force needed to accelerate m at a.
func (m Mass[T]) MulAcceleration(a Acceleration[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](m.value * a.value)}
}

// MulFrequency returns the mass rate of transferring m once per cycle
// at frequency f.
func (m Mass[T]) MulFrequency(f Frequency[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](m.value * f.value)}
}

// DivTime returns the mass rate of transferring m over time t.
func (m Mass[T]) DivTime(t Time[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](m.value / t.value)}
}

// DivVolume returns the density of m spread over volume v.
func (m Mass[T]) DivVolume(v Volume[T]) MassDensity[T] {
	return MassDensity[T]{scalarOf[T, unit.MassDensity](m.value / v.value)}
}
