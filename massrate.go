package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// MassRate is a mass flow, stored in kilograms per second.
type MassRate[T constraints.Float] struct {
	dimensionalScalar[T, unit.MassRate]
}

// NewMassRate creates a mass rate expressed in the given unit.
func NewMassRate[T constraints.Float](value T, u unit.MassRate) MassRate[T] {
	return MassRate[T]{scalarIn(value, u)}
}

// ZeroMassRate returns the additive identity mass rate.
func ZeroMassRate[T constraints.Float]() MassRate[T] { return MassRate[T]{} }

// MassRateFrom returns the rate of transferring mass m over time t.
func MassRateFrom[T constraints.Float](m Mass[T], t Time[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](m.value / t.value)}
}

// MassRateFromFrequency returns the rate of transferring mass m once per
// cycle at frequency f.
func MassRateFromFrequency[T constraints.Float](m Mass[T], f Frequency[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](m.value * f.value)}
}

// Dimensions returns the base dimensions of mass rate.
func (MassRate[T]) Dimensions() Dimensions { return Dimensions{Time: -1, Mass: 1} }

// Equal reports whether both mass rates hold the same standard-unit
// value. NaN never compares equal.
func (r MassRate[T]) Equal(o MassRate[T]) bool { return r.value == o.value }

// Less reports whether r is slower than o.
func (r MassRate[T]) Less(o MassRate[T]) bool { return r.value < o.value }

// Add returns the sum of two mass rates.
func (r MassRate[T]) Add(o MassRate[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](r.value + o.value)}
}

// Sub returns the difference of two mass rates.
func (r MassRate[T]) Sub(o MassRate[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](r.value - o.value)}
}

// Mul returns r scaled by k.
func (r MassRate[T]) Mul(k T) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](r.value * k)}
}

// Div returns r divided by k.
func (r MassRate[T]) Div(k T) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](r.value / k)}
}

// Neg returns r with its sign flipped.
func (r MassRate[T]) Neg() MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](-r.value)}
}

// MulTime returns the mass transferred at r over time t.
func (r MassRate[T]) MulTime(t Time[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](r.value * t.value)}
}

// DivMass returns the fractional turnover rate of mass m flowing at r.
func (r MassRate[T]) DivMass(m Mass[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](r.value / m.value)}
}

// DivFrequency returns the mass transferred per cycle at r and
// frequency f.
func (r MassRate[T]) DivFrequency(f Frequency[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](r.value / f.value)}
}
