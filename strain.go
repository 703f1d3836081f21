package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Strain is a dimensionless relative deformation. It has no unit; the
// stored value is the bare ratio.
type Strain[T constraints.Float] struct {
	dimensionlessScalar[T]
}

// NewStrain creates a strain from a bare ratio.
func NewStrain[T constraints.Float](value T) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: value}}
}

// ZeroStrain returns the additive identity strain.
func ZeroStrain[T constraints.Float]() Strain[T] { return Strain[T]{} }

// StrainFrom returns the strain accumulated at rate r over time t.
func StrainFrom[T constraints.Float](r StrainRate[T], t Time[T]) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: r.value * t.value}}
}

// Dimensions returns the base dimensions of strain, which is
// dimensionless.
func (Strain[T]) Dimensions() Dimensions { return Dimensionless }

// Equal reports whether both strains hold the same value. NaN never
// compares equal.
func (s Strain[T]) Equal(o Strain[T]) bool { return s.value == o.value }

// Less reports whether s is smaller than o.
func (s Strain[T]) Less(o Strain[T]) bool { return s.value < o.value }

// Add returns the sum of two strains.
func (s Strain[T]) Add(o Strain[T]) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: s.value + o.value}}
}

// Sub returns the difference of two strains.
func (s Strain[T]) Sub(o Strain[T]) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: s.value - o.value}}
}

// Mul returns s scaled by k.
func (s Strain[T]) Mul(k T) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: s.value * k}}
}

// Div returns s divided by k.
func (s Strain[T]) Div(k T) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: s.value / k}}
}

// Neg returns s with its sign flipped.
func (s Strain[T]) Neg() Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: -s.value}}
}

// MulFrequency returns the strain rate of accumulating s once per cycle
// at frequency f.
func (s Strain[T]) MulFrequency(f Frequency[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](s.value * f.value)}
}

// DivTime returns the strain rate of accumulating s over time t.
func (s Strain[T]) DivTime(t Time[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](s.value / t.value)}
}
