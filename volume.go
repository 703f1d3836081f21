package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Volume is a three-dimensional extent, stored in cubic metres.
type Volume[T constraints.Float] struct {
	dimensionalScalar[T, unit.Volume]
}

// NewVolume creates a volume expressed in the given unit.
func NewVolume[T constraints.Float](value T, u unit.Volume) Volume[T] {
	return Volume[T]{scalarIn(value, u)}
}

// ZeroVolume returns the additive identity volume.
func ZeroVolume[T constraints.Float]() Volume[T] { return Volume[T]{} }

// VolumeFrom returns the volume of a prism with base a and height h.
func VolumeFrom[T constraints.Float](a Area[T], h Length[T]) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](a.value * h.value)}
}

// Dimensions returns the base dimensions of volume.
func (Volume[T]) Dimensions() Dimensions { return Dimensions{Length: 3} }

// Equal reports whether both volumes hold the same standard-unit value.
// NaN never compares equal.
func (v Volume[T]) Equal(o Volume[T]) bool { return v.value == o.value }

// Less reports whether v is smaller than o.
func (v Volume[T]) Less(o Volume[T]) bool { return v.value < o.value }

// Add returns the sum of two volumes.
func (v Volume[T]) Add(o Volume[T]) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](v.value + o.value)}
}

// Sub returns the difference of two volumes.
func (v Volume[T]) Sub(o Volume[T]) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](v.value - o.value)}
}

// Mul returns v scaled by k.
func (v Volume[T]) Mul(k T) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](v.value * k)}
}

// Div returns v divided by k.
func (v Volume[T]) Div(k T) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](v.value / k)}
}

// Neg returns v with its sign flipped.
func (v Volume[T]) Neg() Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](-v.value)}
}

// MulMassDensity returns the mass of volume v at density d.
func (v Volume[T]) MulMassDensity(d MassDensity[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](v.value * d.value)}
}

// DivArea returns the height of a prism of volume v with base a.
func (v Volume[T]) DivArea(a Area[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](v.value / a.value)}
}

// DivLength returns the base area of a prism of volume v with height l.
func (v Volume[T]) DivLength(l Length[T]) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](v.value / l.value)}
}
