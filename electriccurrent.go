package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// ElectricCurrent is a flow of electric charge, stored in amperes.
type ElectricCurrent[T constraints.Float] struct {
	dimensionalScalar[T, unit.ElectricCurrent]
}

// NewElectricCurrent creates an electric current expressed in the given
// unit.
func NewElectricCurrent[T constraints.Float](value T, u unit.ElectricCurrent) ElectricCurrent[T] {
	return ElectricCurrent[T]{scalarIn(value, u)}
}

// ZeroElectricCurrent returns the additive identity electric current.
func ZeroElectricCurrent[T constraints.Float]() ElectricCurrent[T] {
	return ElectricCurrent[T]{}
}

// Dimensions returns the base dimensions of electric current.
func (ElectricCurrent[T]) Dimensions() Dimensions { return Dimensions{ElectricCurrent: 1} }

// Equal reports whether both currents hold the same standard-unit
// value. NaN never compares equal.
func (c ElectricCurrent[T]) Equal(o ElectricCurrent[T]) bool { return c.value == o.value }

// Less reports whether c is weaker than o.
func (c ElectricCurrent[T]) Less(o ElectricCurrent[T]) bool { return c.value < o.value }

// Add returns the sum of two currents.
func (c ElectricCurrent[T]) Add(o ElectricCurrent[T]) ElectricCurrent[T] {
	return ElectricCurrent[T]{scalarOf[T, unit.ElectricCurrent](c.value + o.value)}
}

// Sub returns the difference of two currents.
func (c ElectricCurrent[T]) Sub(o ElectricCurrent[T]) ElectricCurrent[T] {
	return ElectricCurrent[T]{scalarOf[T, unit.ElectricCurrent](c.value - o.value)}
}

// Mul returns c scaled by k.
func (c ElectricCurrent[T]) Mul(k T) ElectricCurrent[T] {
	return ElectricCurrent[T]{scalarOf[T, unit.ElectricCurrent](c.value * k)}
}

// Div returns c divided by k.
func (c ElectricCurrent[T]) Div(k T) ElectricCurrent[T] {
	return ElectricCurrent[T]{scalarOf[T, unit.ElectricCurrent](c.value / k)}
}

// Neg returns c with its sign flipped.
func (c ElectricCurrent[T]) Neg() ElectricCurrent[T] {
	return ElectricCurrent[T]{scalarOf[T, unit.ElectricCurrent](-c.value)}
}
