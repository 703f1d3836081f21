package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// TemperatureDifference is a change in temperature, stored in kelvins.
// Differences convert by scale alone, unlike absolute temperature
// scales, which carry offsets.
type TemperatureDifference[T constraints.Float] struct {
	dimensionalScalar[T, unit.TemperatureDifference]
}

// NewTemperatureDifference creates a temperature difference expressed in
// the given unit.
func NewTemperatureDifference[T constraints.Float](value T, u unit.TemperatureDifference) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarIn(value, u)}
}

// ZeroTemperatureDifference returns the additive identity temperature
// difference.
func ZeroTemperatureDifference[T constraints.Float]() TemperatureDifference[T] {
	return TemperatureDifference[T]{}
}

// Dimensions returns the base dimensions of temperature difference.
func (TemperatureDifference[T]) Dimensions() Dimensions { return Dimensions{Temperature: 1} }

// Equal reports whether both differences hold the same standard-unit
// value. NaN never compares equal.
func (d TemperatureDifference[T]) Equal(o TemperatureDifference[T]) bool {
	return d.value == o.value
}

// Less reports whether d is smaller than o.
func (d TemperatureDifference[T]) Less(o TemperatureDifference[T]) bool {
	return d.value < o.value
}

// Add returns the sum of two temperature differences.
func (d TemperatureDifference[T]) Add(o TemperatureDifference[T]) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[T, unit.TemperatureDifference](d.value + o.value)}
}

// Sub returns the difference of two temperature differences.
func (d TemperatureDifference[T]) Sub(o TemperatureDifference[T]) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[T, unit.TemperatureDifference](d.value - o.value)}
}

// Mul returns d scaled by k.
func (d TemperatureDifference[T]) Mul(k T) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[T, unit.TemperatureDifference](d.value * k)}
}

// Div returns d divided by k.
func (d TemperatureDifference[T]) Div(k T) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[T, unit.TemperatureDifference](d.value / k)}
}

// Neg returns d with its sign flipped.
func (d TemperatureDifference[T]) Neg() TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[T, unit.TemperatureDifference](-d.value)}
}
