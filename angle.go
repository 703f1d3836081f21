package quant

import (
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// Angle is a plane angle, stored in radians.
type Angle[T constraints.Float] struct {
	dimensionalScalar[T, unit.Angle]
}

// NewAngle creates an angle expressed in the given unit.
func NewAngle[T constraints.Float](value T, u unit.Angle) Angle[T] {
	return Angle[T]{scalarIn(value, u)}
}

// ZeroAngle returns the additive identity angle.
func ZeroAngle[T constraints.Float]() Angle[T] { return Angle[T]{} }

// AngleFrom returns the angle swept at angular speed w over time t.
func AngleFrom[T constraints.Float](w AngularSpeed[T], t Time[T]) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](w.value * t.value)}
}

// Dimensions returns the base dimensions of angle, which is
// dimensionless.
func (Angle[T]) Dimensions() Dimensions { return Dimensionless }

// Equal reports whether both angles hold the same standard-unit value.
// NaN never compares equal.
func (a Angle[T]) Equal(o Angle[T]) bool { return a.value == o.value }

// Less reports whether a is narrower than o.
func (a Angle[T]) Less(o Angle[T]) bool { return a.value < o.value }

// Add returns the sum of two angles.
func (a Angle[T]) Add(o Angle[T]) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](a.value + o.value)}
}

// Sub returns the difference of two angles.
func (a Angle[T]) Sub(o Angle[T]) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](a.value - o.value)}
}

// Mul returns a scaled by k.
func (a Angle[T]) Mul(k T) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](a.value * k)}
}

// Div returns a divided by k.
func (a Angle[T]) Div(k T) Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](a.value / k)}
}

// Neg returns a with its sign flipped.
func (a Angle[T]) Neg() Angle[T] {
	return Angle[T]{scalarOf[T, unit.Angle](-a.value)}
}

// MulFrequency returns the angular speed of sweeping a once per cycle
// at frequency f.
func (a Angle[T]) MulFrequency(f Frequency[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](a.value * f.value)}
}

// DivTime returns the angular speed of sweeping a over time t.
func (a Angle[T]) DivTime(t Time[T]) AngularSpeed[T] {
	return AngularSpeed[T]{scalarOf[T, unit.AngularSpeed](a.value / t.value)}
}

// DivAngularSpeed returns the time needed to sweep a at angular speed
// w.
func (a Angle[T]) DivAngularSpeed(w AngularSpeed[T]) Time[T] {
	return Time[T]{scalarOf[T, unit.Time](a.value / w.value)}
}
