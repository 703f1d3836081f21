package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// SubstanceAmount is an amount of substance, stored in moles.
type SubstanceAmount[T constraints.Float] struct {
	dimensionalScalar[T, unit.SubstanceAmount]
}

// NewSubstanceAmount creates a substance amount expressed in the given
// unit.
func NewSubstanceAmount[T constraints.Float](value T, u unit.SubstanceAmount) SubstanceAmount[T] {
	return SubstanceAmount[T]{scalarIn(value, u)}
}

// ZeroSubstanceAmount returns the additive identity substance amount.
func ZeroSubstanceAmount[T constraints.Float]() SubstanceAmount[T] {
	return SubstanceAmount[T]{}
}

// Dimensions returns the base dimensions of substance amount.
func (SubstanceAmount[T]) Dimensions() Dimensions { return Dimensions{SubstanceAmount: 1} }

// Equal reports whether both amounts hold the same standard-unit value.
// NaN never compares equal.
func (n SubstanceAmount[T]) Equal(o SubstanceAmount[T]) bool { return n.value == o.value }

// Less reports whether n is smaller than o.
func (n SubstanceAmount[T]) Less(o SubstanceAmount[T]) bool { return n.value < o.value }

// Add returns the sum of two amounts.
func (n SubstanceAmount[T]) Add(o SubstanceAmount[T]) SubstanceAmount[T] {
	return SubstanceAmount[T]{scalarOf[T, unit.SubstanceAmount](n.value + o.value)}
}

// Sub returns the difference of two amounts.
func (n SubstanceAmount[T]) Sub(o SubstanceAmount[T]) SubstanceAmount[T] {
	return SubstanceAmount[T]{scalarOf[T, unit.SubstanceAmount](n.value - o.value)}
}

// Mul returns n scaled by k.
func (n SubstanceAmount[T]) Mul(k T) SubstanceAmount[T] {
	return SubstanceAmount[T]{scalarOf[T, unit.SubstanceAmount](n.value * k)}
}

// Div returns n divided by k.
func (n SubstanceAmount[T]) Div(k T) SubstanceAmount[T] {
	return SubstanceAmount[T]{scalarOf[T, unit.SubstanceAmount](n.value / k)}
}

// Neg returns n with its sign flipped.
func (n SubstanceAmount[T]) Neg() SubstanceAmount[T] {
	return SubstanceAmount[T]{scalarOf[T, unit.SubstanceAmount](-n.value)}
}
