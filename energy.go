package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Energy is a capacity to do work, stored in joules.
type Energy[T constraints.Float] struct {
	dimensionalScalar[T, unit.Energy]
}

// NewEnergy creates an energy expressed in the given unit.
func NewEnergy[T constraints.Float](value T, u unit.Energy) Energy[T] {
	return Energy[T]{scalarIn(value, u)}
}

// ZeroEnergy returns the additive identity energy.
func ZeroEnergy[T constraints.Float]() Energy[T] { return Energy[T]{} }

// EnergyFrom returns the work of applying force f along length l.
func EnergyFrom[T constraints.Float](f Force[T], l Length[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](f.value * l.value)}
}

// EnergyFromPower returns the energy delivered at power p over time t.
func EnergyFromPower[T constraints.Float](p Power[T], t Time[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](p.value * t.value)}
}

// Dimensions returns the base dimensions of energy.
func (Energy[T]) Dimensions() Dimensions { return Dimensions{Time: -2, Length: 2, Mass: 1} }

// Equal reports whether both energies hold the same standard-unit
// value. NaN never compares equal.
func (e Energy[T]) Equal(o Energy[T]) bool { return e.value == o.value }

// Less reports whether e is smaller than o.
func (e Energy[T]) Less(o Energy[T]) bool { return e.value < o.value }

// Add returns the sum of two energies.
func (e Energy[T]) Add(o Energy[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](e.value + o.value)}
}

// Sub returns the difference of two energies.
func (e Energy[T]) Sub(o Energy[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](e.value - o.value)}
}

// Mul returns e scaled by k.
func (e Energy[T]) Mul(k T) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](e.value * k)}
}

// Div returns e divided by k.
func (e Energy[T]) Div(k T) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](e.value / k)}
}

// Neg returns e with its sign flipped.
func (e Energy[T]) Neg() Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](-e.value)}
}

// MulFrequency returns the power of delivering e once per cycle at
// frequency f.
func (e Energy[T]) MulFrequency(f Frequency[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](e.value * f.value)}
}

// DivTime returns the power of delivering e over time t.
func (e Energy[T]) DivTime(t Time[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](e.value / t.value)}
}

// DivPower returns the time over which power p delivers e.
func (e Energy[T]) DivPower(p Power[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](e.value / p.value)}
}

// DivLength returns the force that produces e when applied along
// length l.
func (e Energy[T]) DivLength(l Length[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](e.value / l.value)}
}

// DivForce returns the length along which force f produces e.
func (e Energy[T]) DivForce(f Force[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](e.value / f.value)}
}
