package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Area is a two-dimensional extent, stored in square metres.
type Area[T constraints.Float] struct {
	dimensionalScalar[T, unit.Area]
}

// NewArea creates an area expressed in the given unit.
func NewArea[T constraints.Float](value T, u unit.Area) Area[T] {
	return Area[T]{scalarIn(value, u)}
}

// ZeroArea returns the additive identity area.
func ZeroArea[T constraints.Float]() Area[T] { return Area[T]{} }

// AreaFrom returns the area of a rectangle with the given sides.
func AreaFrom[T constraints.Float](width, height Length[T]) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](width.value * height.value)}
}

// Dimensions returns the base dimensions of area.
func (Area[T]) Dimensions() Dimensions { return Dimensions{Length: 2} }

// Equal reports whether both areas hold the same standard-unit value.
// NaN never compares equal.
func (a Area[T]) Equal(o Area[T]) bool { return a.value == o.value }

// Less reports whether a is smaller than o.
func (a Area[T]) Less(o Area[T]) bool { return a.value < o.value }

// Add returns the sum of two areas.
func (a Area[T]) Add(o Area[T]) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](a.value + o.value)}
}

// Sub returns the difference of two areas.
func (a Area[T]) Sub(o Area[T]) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](a.value - o.value)}
}

// Mul returns a scaled by k.
func (a Area[T]) Mul(k T) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](a.value * k)}
}

// Div returns a divided by k.
func (a Area[T]) Div(k T) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](a.value / k)}
}

// Neg returns a with its sign flipped.
func (a Area[T]) Neg() Area[T] {
	return Area[T]{scalarOf[T, unit.Area](-a.value)}
}

// MulLength returns the volume of a prism with base a and height l.
func (a Area[T]) MulLength(l Length[T]) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](a.value * l.value)}
}

// MulPressure returns the force exerted by pressure p over a.
func (a Area[T]) MulPressure(p Pressure[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](a.value * p.value)}
}

// DivLength returns the side of a rectangle of area a with the other
// side l.
func (a Area[T]) DivLength(l Length[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](a.value / l.value)}
}
