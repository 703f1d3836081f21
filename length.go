package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Length is a one-dimensional extent, stored in metres.
type Length[T constraints.Float] struct {
	dimensionalScalar[T, unit.Length]
}

// NewLength creates a length expressed in the given unit.
func NewLength[T constraints.Float](value T, u unit.Length) Length[T] {
	return Length[T]{scalarIn(value, u)}
}

// ZeroLength returns the additive identity length.
func ZeroLength[T constraints.Float]() Length[T] { return Length[T]{} }

// LengthFrom returns the length covered at speed s over time t.
func LengthFrom[T constraints.Float](s Speed[T], t Time[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](s.value * t.value)}
}

// LengthFromFrequency returns the length traversed once per cycle at
// speed s and frequency f.
func LengthFromFrequency[T constraints.Float](s Speed[T], f Frequency[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](s.value / f.value)}
}

// Dimensions returns the base dimensions of length.
func (Length[T]) Dimensions() Dimensions { return Dimensions{Length: 1} }

// Equal reports whether both lengths hold the same standard-unit value.
// NaN never compares equal.
func (l Length[T]) Equal(o Length[T]) bool { return l.value == o.value }

// Less reports whether l is shorter than o.
func (l Length[T]) Less(o Length[T]) bool { return l.value < o.value }

// Add returns the sum of two lengths.
func (l Length[T]) Add(o Length[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](l.value + o.value)}
}

// Sub returns the difference of two lengths.
func (l Length[T]) Sub(o Length[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](l.value - o.value)}
}

// Mul returns l scaled by k.
func (l Length[T]) Mul(k T) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](l.value * k)}
}

// Div returns l divided by k.
func (l Length[T]) Div(k T) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](l.value / k)}
}

// Neg returns l with its sign flipped.
func (l Length[T]) Neg() Length[T] {
	return Length[T]{scalarOf[T, unit.Length](-l.value)}
}

// MulLength returns the area of a rectangle with sides l and o.
func (l Length[T]) MulLength(o Length[T]) Area[T] {
	return Area[T]{scalarOf[T, unit.Area](l.value * o.value)}
}

// MulArea returns the volume of a prism with base a and height l.
func (l Length[T]) MulArea(a Area[T]) Volume[T] {
	return Volume[T]{scalarOf[T, unit.Volume](l.value * a.value)}
}

// MulFrequency returns the speed of traversing l once per cycle at
// frequency f.
func (l Length[T]) MulFrequency(f Frequency[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](l.value * f.value)}
}

// MulForce returns the energy of applying force f along l.
func (l Length[T]) MulForce(f Force[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](l.value * f.value)}
}

// DivTime returns the speed of covering l over time t.
func (l Length[T]) DivTime(t Time[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](l.value / t.value)}
}

// DivSpeed returns the time needed to cover l at speed s.
func (l Length[T]) DivSpeed(s Speed[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](l.value / s.value)}
}
