package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Power is a rate of energy transfer, stored in watts.
type Power[T constraints.Float] struct {
	dimensionalScalar[T, unit.Power]
}

// NewPower creates a power expressed in the given unit.
func NewPower[T constraints.Float](value T, u unit.Power) Power[T] {
	return Power[T]{scalarIn(value, u)}
}

// ZeroPower returns the additive identity power.
func ZeroPower[T constraints.Float]() Power[T] { return Power[T]{} }

// PowerFrom returns the power of delivering energy e over time t.
func PowerFrom[T constraints.Float](e Energy[T], t Time[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](e.value / t.value)}
}

// PowerFromFrequency returns the power of delivering energy e once per
// cycle at frequency f.
func PowerFromFrequency[T constraints.Float](e Energy[T], f Frequency[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](e.value * f.value)}
}

// Dimensions returns the base dimensions of power.
func (Power[T]) Dimensions() Dimensions { return Dimensions{Time: -3, Length: 2, Mass: 1} }

// Equal reports whether both powers hold the same standard-unit value.
// NaN never compares equal.
func (p Power[T]) Equal(o Power[T]) bool { return p.value == o.value }

// Less reports whether p is lower than o.
func (p Power[T]) Less(o Power[T]) bool { return p.value < o.value }

// Add returns the sum of two powers.
func (p Power[T]) Add(o Power[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](p.value + o.value)}
}

// Sub returns the difference of two powers.
func (p Power[T]) Sub(o Power[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](p.value - o.value)}
}

// Mul returns p scaled by k.
func (p Power[T]) Mul(k T) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](p.value * k)}
}

// Div returns p divided by k.
func (p Power[T]) Div(k T) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](p.value / k)}
}

// Neg returns p with its sign flipped.
func (p Power[T]) Neg() Power[T] {
	return Power[T]{scalarOf[T, unit.Power](-p.value)}
}

// MulTime returns the energy delivered at p over time t.
func (p Power[T]) MulTime(t Time[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](p.value * t.value)}
}

// DivEnergy returns the frequency of delivering energy e at p.
func (p Power[T]) DivEnergy(e Energy[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](p.value / e.value)}
}

// DivFrequency returns the energy delivered per cycle at p and
// frequency f.
func (p Power[T]) DivFrequency(f Frequency[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](p.value / f.value)}
}
