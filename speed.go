package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Speed is the magnitude of a rate of change of position, stored in
// metres per second.
type Speed[T constraints.Float] struct {
	dimensionalScalar[T, unit.Speed]
}

// NewSpeed creates a speed expressed in the given unit.
func NewSpeed[T constraints.Float](value T, u unit.Speed) Speed[T] {
	return Speed[T]{scalarIn(value, u)}
}

// ZeroSpeed returns the additive identity speed.
func ZeroSpeed[T constraints.Float]() Speed[T] { return Speed[T]{} }

// SpeedFrom returns the speed of covering length l over time t.
func SpeedFrom[T constraints.Float](l Length[T], t Time[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](l.value / t.value)}
}

// SpeedFromFrequency returns the speed of traversing length l once per
// cycle at frequency f.
func SpeedFromFrequency[T constraints.Float](l Length[T], f Frequency[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](l.value * f.value)}
}

// Dimensions returns the base dimensions of speed.
func (Speed[T]) Dimensions() Dimensions { return Dimensions{Time: -1, Length: 1} }

// Equal reports whether both speeds hold the same standard-unit value.
// NaN never compares equal.
func (s Speed[T]) Equal(o Speed[T]) bool { return s.value == o.value }

// Less reports whether s is slower than o.
func (s Speed[T]) Less(o Speed[T]) bool { return s.value < o.value }

// Add returns the sum of two speeds.
func (s Speed[T]) Add(o Speed[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](s.value + o.value)}
}

// Sub returns the difference of two speeds.
func (s Speed[T]) Sub(o Speed[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](s.value - o.value)}
}

// Mul returns s scaled by k.
func (s Speed[T]) Mul(k T) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](s.value * k)}
}

// Div returns s divided by k.
func (s Speed[T]) Div(k T) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](s.value / k)}
}

// Neg returns s with its sign flipped.
func (s Speed[T]) Neg() Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](-s.value)}
}

// MulTime returns the length covered at s over time t.
func (s Speed[T]) MulTime(t Time[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](s.value * t.value)}
}

// MulFrequency returns the acceleration of gaining s once per cycle at
// frequency f.
func (s Speed[T]) MulFrequency(f Frequency[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](s.value * f.value)}
}

// DivTime returns the acceleration of gaining s over time t.
func (s Speed[T]) DivTime(t Time[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](s.value / t.value)}
}

// DivAcceleration returns the time needed to gain s at acceleration a.
func (s Speed[T]) DivAcceleration(a Acceleration[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](s.value / a.value)}
}

// DivFrequency returns the length traversed per cycle at s and
// frequency f.
func (s Speed[T]) DivFrequency(f Frequency[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](s.value / f.value)}
}

// DivLength returns the frequency of traversing length l at s.
func (s Speed[T]) DivLength(l Length[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](s.value / l.value)}
}
