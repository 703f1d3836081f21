package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// AngularSpeed is a rate of angular sweep, stored in radians per
// second.
type AngularSpeed[T constraints.Float] struct {
	dimensionalScalar[T, unit.AngularSpeed]
}

// NewAngularSpeed creates an angular speed expressed in the given unit.
func NewAngularSpeed[T constraints.Float](value T, u unit.AngularSpeed) AngularSpeed[T] {
	return AngularSpeed[T]{scalarIn(value, u)}
}

// ZeroAngularSpeed returns the additive identity angular speed.
func ZeroAngularSpeed[T constraints.Float]() AngularSpeed[T] { return AngularSpeed[T]{} }

// AngularSpeedFrom returns the angular speed of sweeping angle a over
// time t.
func AngularSpeedFrom[T constraints.Float](a Angle[T], t Time[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](a.value / t.value)}
}

// AngularSpeedFromFrequency returns the angular speed of sweeping angle
// a once per cycle at frequency f.
func AngularSpeedFromFrequency[T constraints.Float](a Angle[T], f Frequency[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](a.value * f.value)}
}

// Dimensions returns the base dimensions of angular speed.
func (AngularSpeed[T]) Dimensions() Dimensions { return Dimensions{Time: -1} }

// Equal reports whether both angular speeds hold the same standard-unit
// value. NaN never compares equal.
func (w AngularSpeed[T]) Equal(o AngularSpeed[T]) bool { return w.value == o.value }

// Less reports whether w is slower than o.
func (w AngularSpeed[T]) Less(o AngularSpeed[T]) bool { return w.value < o.value }

// Add returns the sum of two angular speeds.
func (w AngularSpeed[T]) Add(o AngularSpeed[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](w.value + o.value)}
}

// Sub returns the difference of two angular speeds.
func (w AngularSpeed[T]) Sub(o AngularSpeed[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](w.value - o.value)}
}

// Mul returns w scaled by k.
func (w AngularSpeed[T]) Mul(k T) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](w.value * k)}
}

// Div returns w divided by k.
func (w AngularSpeed[T]) Div(k T) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](w.value / k)}
}

// Neg returns w with its sign flipped.
func (w AngularSpeed[T]) Neg() AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](-w.value)}
}

// MulTime returns the angle swept at w over time t.
func (w AngularSpeed[T]) MulTime(t Time[T]) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](w.value * t.value)}
}

// DivAngle returns the frequency of sweeping angle a at w.
func (w AngularSpeed[T]) DivAngle(a Angle[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](w.value / a.value)}
}

// DivFrequency returns the angle swept per cycle at w and frequency f.
func (w AngularSpeed[T]) DivFrequency(f Frequency[T]) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](w.value / f.value)}
}
