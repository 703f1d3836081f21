package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Frequency is a rate of occurrence, stored in hertz.
type Frequency[T constraints.Float] struct {
	dimensionalScalar[T, unit.Frequency]
}

// NewFrequency creates a frequency expressed in the given unit.
func NewFrequency[T constraints.Float](value T, u unit.Frequency) Frequency[T] {
	return Frequency[T]{scalarIn(value, u)}
}

// ZeroFrequency returns the additive identity frequency.
func ZeroFrequency[T constraints.Float]() Frequency[T] { return Frequency[T]{} }

// FrequencyFromMassRate returns the fractional turnover rate of mass m
// flowing at rate r.
func FrequencyFromMassRate[T constraints.Float](r MassRate[T], m Mass[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](r.value / m.value)}
}

// Dimensions returns the base dimensions of frequency.
func (Frequency[T]) Dimensions() Dimensions { return Dimensions{Time: -1} }

// Period returns the reciprocal of f. A zero frequency yields an
// infinite period per IEEE-754.
func (f Frequency[T]) Period() Time[T] {
	return Time[T]{scalarOf[T, unit.Time](1 / f.value)}
}

// Equal reports whether both frequencies hold the same standard-unit
// value. NaN never compares equal.
func (f Frequency[T]) Equal(o Frequency[T]) bool { return f.value == o.value }

// Less reports whether f is lower than o.
func (f Frequency[T]) Less(o Frequency[T]) bool { return f.value < o.value }

// Add returns the sum of two frequencies.
func (f Frequency[T]) Add(o Frequency[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](f.value + o.value)}
}

// Sub returns the difference of two frequencies.
func (f Frequency[T]) Sub(o Frequency[T]) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](f.value - o.value)}
}

// Mul returns f scaled by k.
func (f Frequency[T]) Mul(k T) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](f.value * k)}
}

// Div returns f divided by k.
func (f Frequency[T]) Div(k T) Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](f.value / k)}
}

// Neg returns f with its sign flipped.
func (f Frequency[T]) Neg() Frequency[T] {
	return Frequency[T]{scalarOf[T, unit.Frequency](-f.value)}
}

// MulTime returns the number of cycles completed over t, a
// dimensionless count.
func (f Frequency[T]) MulTime(t Time[T]) T { return f.value * t.value }

// MulLength returns the speed of traversing length l once per cycle.
func (f Frequency[T]) MulLength(l Length[T]) Speed[T] {
	return Speed[T]{scalarOf[T, unit.Speed](f.value * l.value)}
}

// MulSpeed returns the acceleration of gaining speed s once per cycle.
func (f Frequency[T]) MulSpeed(s Speed[T]) Acceleration[T] {
	return Acceleration[T]{scalarOf[T, unit.Acceleration](f.value * s.value)}
}

// MulMass returns the mass rate of transferring mass m once per cycle.
func (f Frequency[T]) MulMass(m Mass[T]) MassRate[T] {
	return MassRate[T]{scalarOf[T, unit.MassRate](f.value * m.value)}
}

// MulEnergy returns the power of delivering energy e once per cycle.
func (f Frequency[T]) MulEnergy(e Energy[T]) Power[T] {
	return Power[T]{scalarOf[T, unit.Power](f.value * e.value)}
}

// MulAngle returns the angular speed of sweeping angle a once per cycle.
func (f Frequency[T]) MulAngle(a Angle[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](f.value * a.value)}
}

// MulStrain returns the strain rate of accumulating strain s once per
// cycle.
func (f Frequency[T]) MulStrain(s Strain[T]) StrainRate[T] {
	return StrainRate[T]{scalarOf[T, unit.Frequency](f.value * s.value)}
}
