package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Time is a duration, stored in seconds.
type Time[T constraints.Float] struct {
	dimensionalScalar[T, unit.Time]
}

// NewTime creates a time expressed in the given unit.
func NewTime[T constraints.Float](value T, u unit.Time) Time[T] {
	return Time[T]{scalarIn(value, u)}
}

// ZeroTime returns the additive identity time.
func ZeroTime[T constraints.Float]() Time[T] { return Time[T]{} }

// TimeFromSpeed returns the time needed to cover length l at speed s.
func TimeFromSpeed[T constraints.Float](l Length[T], s Speed[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](l.value / s.value)}
}

// TimeFromPower returns the time over which power p delivers energy e.
func TimeFromPower[T constraints.Float](e Energy[T], p Power[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](e.value / p.value)}
}

// Dimensions returns the base dimensions of time.
func (Time[T]) Dimensions() Dimensions { return Dimensions{Time: 1} }

// Frequency returns the reciprocal of t. A zero time yields an infinite
// frequency per IEEE-754.
func (t Time[T]) Frequency() Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](1 / t.value)}
}

// Equal reports whether both times hold the same standard-unit value.
// NaN never compares equal.
func (t Time[T]) Equal(o Time[T]) bool { return t.value == o.value }

// Less reports whether t is shorter than o.
func (t Time[T]) Less(o Time[T]) bool { return t.value < o.value }

// Add returns the sum of two times.
func (t Time[T]) Add(o Time[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](t.value + o.value)}
}

// Sub returns the difference of two times.
func (t Time[T]) Sub(o Time[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](t.value - o.value)}
}

// Mul returns t scaled by k.
func (t Time[T]) Mul(k T) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](t.value * k)}
}

// Div returns t divided by k.
func (t Time[T]) Div(k T) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](t.value / k)}
}

// Neg returns t with its sign flipped.
func (t Time[T]) Neg() Time[T] {
	return Time[T]{scalarOf[T, unit.Time](-t.value)}
}

// MulFrequency returns the number of cycles completed in t at frequency
// f, a dimensionless count.
func (t Time[T]) MulFrequency(f Frequency[T]) T { return t.value * f.value }

// MulSpeed returns the length covered in t at speed s.
func (t Time[T]) MulSpeed(s Speed[T]) Length[T] {
	return Length[T]{scalarOf[T, unit.Length](t.value * s.value)}
}

// MulAcceleration returns the speed gained over t at acceleration a.
func (t Time[T]) MulAcceleration(a Acceleration[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](t.value * a.value)}
}

// MulMassRate returns the mass transferred over t at rate r.
func (t Time[T]) MulMassRate(r MassRate[T]) Mass[T] {
	return Mass[T]{scalarOf[T, unit.Mass](t.value * r.value)}
}

// MulPower returns the energy delivered over t at power p.
func (t Time[T]) MulPower(p Power[T]) Energy[T] {
	return Energy[T]{scalarOf[T, unit.Energy](t.value * p.value)}
}

// MulAngularSpeed returns the angle swept over t at angular speed w.
func (t Time[T]) MulAngularSpeed(w AngularSpeed[T]) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](t.value * w.value)}
}

// MulStrainRate returns the strain accumulated over t at rate r.
func (t Time[T]) MulStrainRate(r StrainRate[T]) Strain[T] {
	return Strain[T]{dimensionlessScalar[T]{value: t.value * r.value}}
}
