package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// StrainRate is a rate of relative deformation. Strain itself is
// dimensionless, so strain rates are measured in frequency units and
// stored in hertz.
type StrainRate[T constraints.Float] struct {
	dimensionalScalar[T, unit.Frequency]
}

// NewStrainRate creates a strain rate expressed in the given unit.
func NewStrainRate[T constraints.Float](value T, u unit.Frequency) StrainRate[T] {
	return StrainRate[T]{scalarIn(value, u)}
}

// ZeroStrainRate returns the additive identity strain rate.
func ZeroStrainRate[T constraints.Float]() StrainRate[T] { return StrainRate[T]{} }

// StrainRateFrom returns the rate of accumulating strain s over time t.
func StrainRateFrom[T constraints.Float](s Strain[T], t Time[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](s.value / t.value)}
}

// StrainRateFromFrequency returns the rate of accumulating strain s
// once per cycle at frequency f.
func StrainRateFromFrequency[T constraints.Float](s Strain[T], f Frequency[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](s.value * f.value)}
}

// Dimensions returns the base dimensions of strain rate.
func (StrainRate[T]) Dimensions() Dimensions { return Dimensions{Time: -1} }

// Equal reports whether both strain rates hold the same standard-unit
// value. NaN never compares equal.
func (r StrainRate[T]) Equal(o StrainRate[T]) bool { return r.value == o.value }

// Less reports whether r is slower than o.
func (r StrainRate[T]) Less(o StrainRate[T]) bool { return r.value < o.value }

// Add returns the sum of two strain rates.
func (r StrainRate[T]) Add(o StrainRate[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](r.value + o.value)}
}

// Sub returns the difference of two strain rates.
func (r StrainRate[T]) Sub(o StrainRate[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](r.value - o.value)}
}

// Mul returns r scaled by k.
func (r StrainRate[T]) Mul(k T) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](r.value * k)}
}

// Div returns r divided by k.
func (r StrainRate[T]) Div(k T) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](r.value / k)}
}

// Neg returns r with its sign flipped.
func (r StrainRate[T]) Neg() StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](-r.value)}
}

// MulTime returns the strain accumulated at r over time t.
func (r StrainRate[T]) MulTime(t Time[T]) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: r.value * t.value}}
}

// DivStrain returns the frequency of accumulating strain s at r.
func (r StrainRate[T]) DivStrain(s Strain[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](r.value / s.value)}
}
