package quant

import (
	"fmt"
	"math"
	"testing"

	"github.com/unitful/quant/unit"
)

// approx reports whether two floats agree within tol.
func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestScalar_ValueAndIn(t *testing.T) {
	l := NewLength(2.0, unit.Kilometre)

	if got := l.Value(); got != 2000.0 {
		t.Errorf("Value() = %v, want 2000", got)
	}
	if got := l.In(unit.Kilometre); got != 2.0 {
		t.Errorf("In(Kilometre) = %v, want 2", got)
	}
	if got := l.In(unit.Millimetre); got != 2e6 {
		t.Errorf("In(Millimetre) = %v, want 2e6", got)
	}
}

func TestScalar_RoundTrip(t *testing.T) {
	// Building a quantity from a unit and reading it back in that unit
	// reproduces the original value for every unit of the kind.
	units := []unit.Length{
		unit.Metre, unit.Millimetre, unit.Centimetre, unit.Kilometre,
		unit.Micrometre, unit.Nanometre, unit.Inch, unit.Foot,
		unit.Yard, unit.Mile, unit.NauticalMile,
	}
	const value = 3.7

	for _, u := range units {
		t.Run(u.String(), func(t *testing.T) {
			l := NewLength(value, u)
			if got := l.In(u); !approx(got, value, 1e-12) {
				t.Errorf("NewLength(%v, %v).In(%v) = %v, want %v", value, u, u, got, value)
			}
		})
	}
}

func TestScalar_SetValue(t *testing.T) {
	s := NewSpeed(1.0, unit.MetrePerSecond)

	s.SetValue(9.5)
	if got := s.Value(); got != 9.5 {
		t.Errorf("Value() after SetValue = %v, want 9.5", got)
	}

	*s.MutableValue() = 3.0
	if got := s.Value(); got != 3.0 {
		t.Errorf("Value() after MutableValue write = %v, want 3", got)
	}
}

func TestScalar_IsZero(t *testing.T) {
	if !ZeroMass[float64]().IsZero() {
		t.Error("ZeroMass().IsZero() = false, want true")
	}
	if NewMass(1.0, unit.Kilogram).IsZero() {
		t.Error("NewMass(1, kg).IsZero() = true, want false")
	}
}

func TestScalar_Hash(t *testing.T) {
	a := NewEnergy(4.5, unit.Joule)
	b := NewEnergy(4.5, unit.Joule)
	c := NewEnergy(4.6, unit.Joule)

	if a.Hash() != b.Hash() {
		t.Error("equal quantities hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Error("distinct quantities hash equally")
	}
	if want := math.Float64bits(4.5); a.Hash() != want {
		t.Errorf("Hash() = %#x, want bits of 4.5 (%#x)", a.Hash(), want)
	}
}

func TestScalar_Stringer(t *testing.T) {
	f := NewFrequency(2.0, unit.Hertz)

	if got, want := f.String(), "2.0 Hz"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := fmt.Sprint(f), "2.0 Hz"; got != want {
		t.Errorf("fmt.Sprint = %q, want %q", got, want)
	}
}

func TestScalar_NaNNeverEqual(t *testing.T) {
	nan := NewTime(math.NaN(), unit.Second)

	if nan.Equal(nan) {
		t.Error("NaN time compares equal to itself")
	}
}

func TestScalar_Float32(t *testing.T) {
	s := NewSpeed[float32](8.0, unit.MetrePerSecond)
	a := s.DivTime(NewTime[float32](2.0, unit.Second))

	if !a.Equal(NewAcceleration[float32](4.0, unit.MetrePerSquareSecond)) {
		t.Errorf("8 m/s / 2 s = %v, want 4 m/s^2", a)
	}
}
