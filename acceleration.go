package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Acceleration is the magnitude of a rate of change of speed, stored in
// metres per square second.
type Acceleration[T constraints.Float] struct {
	dimensionalScalar[T, unit.Acceleration]
}

// NewAcceleration creates an acceleration expressed in the given unit.
func NewAcceleration[T constraints.Float](value T, u unit.Acceleration) Acceleration[T] {
	return Acceleration[T]{scalarIn(value, u)}
}

// ZeroAcceleration returns the additive identity acceleration.
func ZeroAcceleration[T constraints.Float]() Acceleration[T] { return Acceleration[T]{} }

// AccelerationFrom returns the acceleration of gaining speed s over
// time t.
func AccelerationFrom[T constraints.Float](s Speed[T], t Time[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](s.value / t.value)}
}

// AccelerationFromFrequency returns the acceleration of gaining speed s
// once per cycle at frequency f.
func AccelerationFromFrequency[T constraints.Float](s Speed[T], f Frequency[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](s.value * f.value)}
}

// Dimensions returns the base dimensions of acceleration.
func (Acceleration[T]) Dimensions() Dimensions { return Dimensions{Time: -2, Length: 1} }

// Equal reports whether both accelerations hold the same standard-unit
// value. NaN never compares equal.
func (a Acceleration[T]) Equal(o Acceleration[T]) bool { return a.value == o.value }

// Less reports whether a is weaker than o.
func (a Acceleration[T]) Less(o Acceleration[T]) bool { return a.value < o.value }

// Add returns the sum of two accelerations.
func (a Acceleration[T]) Add(o Acceleration[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](a.value + o.value)}
}

// Sub returns the difference of two accelerations.
func (a Acceleration[T]) Sub(o Acceleration[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](a.value - o.value)}
}

// Mul returns a scaled by k.
func (a Acceleration[T]) Mul(k T) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](a.value * k)}
}

// Div returns a divided by k.
func (a Acceleration[T]) Div(k T) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](a.value / k)}
}

// Neg returns a with its sign flipped.
func (a Acceleration[T]) Neg() Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](-a.value)}
}

// MulTime returns the speed gained at a over time t.
func (a Acceleration[T]) MulTime(t Time[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](a.value * t.value)}
}

// MulMass returns the force needed to accelerate mass m at a.
func (a Acceleration[T]) MulMass(m Mass[T]) Force[T] {
	return Force[T]{scalarOf[T, unit.Force](a.value * m.value)}
}

// DivFrequency returns the speed gained per cycle at a and frequency f.
func (a Acceleration[T]) DivFrequency(f Frequency[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](a.value / f.value)}
}

// DivSpeed returns the frequency of gaining speed s at a.
func (a Acceleration[T]) DivSpeed(s Speed[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](a.value / s.value)}
}
