package quant

import (
	"testing"

	"github.com/unitful/quant/unit"
)

func TestStrain_Relations(t *testing.T) {
	r := NewStrainRate(0.02, unit.Hertz)
	elapsed := NewTime(5.0, unit.Second)

	s := StrainFrom(r, elapsed)
	if !s.Equal(NewStrain(0.1)) {
		t.Errorf("0.02 /s * 5 s = %v, want 0.1", s)
	}

	if got := StrainRateFrom(s, elapsed); !got.Equal(r) {
		t.Errorf("StrainRateFrom(s, t) = %v, want %v", got, r)
	}
	if got := s.DivTime(elapsed); !got.Equal(r) {
		t.Errorf("s / t = %v, want %v", got, r)
	}
	if got := r.MulTime(elapsed); !got.Equal(s) {
		t.Errorf("r * t = %v, want %v", got, s)
	}
}

func TestStrain_Arithmetic(t *testing.T) {
	a := NewStrain(0.25)
	b := NewStrain(0.5)

	if got := a.Add(b); !got.Equal(NewStrain(0.75)) {
		t.Errorf("0.25 + 0.5 = %v, want 0.75", got)
	}
	if got := b.Sub(a); !got.Equal(a) {
		t.Errorf("0.5 - 0.25 = %v, want 0.25", got)
	}
	if got := a.Mul(2); !got.Equal(b) {
		t.Errorf("0.25 * 2 = %v, want 0.5", got)
	}
	if got := b.Div(2); !got.Equal(a) {
		t.Errorf("0.5 / 2 = %v, want 0.25", got)
	}
	if got := a.Neg().Value(); got != -0.25 {
		t.Errorf("Neg() = %v, want -0.25", got)
	}
	if !a.Less(b) || b.Less(a) {
		t.Errorf("expected %v < %v", a, b)
	}
}

func TestStrain_Dimensionless(t *testing.T) {
	s := NewStrain(0.25)

	if got := s.Dimensions(); !got.Equal(Dimensionless) {
		t.Errorf("Dimensions() = %v, want dimensionless", got)
	}
	if got := s.Print(); got != "0.25" {
		t.Errorf("Print() = %q, want %q", got, "0.25")
	}
}

func TestStrainRate_FromFrequency(t *testing.T) {
	s := NewStrain(0.5)
	f := NewFrequency(4.0, unit.Hertz)

	r := StrainRateFromFrequency(s, f)
	if !r.Equal(NewStrainRate(2.0, unit.Hertz)) {
		t.Errorf("0.5 * 4 Hz = %v, want 2 /s", r)
	}
	if got := r.DivStrain(s); !got.Equal(f) {
		t.Errorf("r / s = %v, want %v", got, f)
	}
}
