package quant

import (
	"testing"

	"github.com/unitful/quant/unit"
)

func TestMassRate_DivMass(t *testing.T) {
	r := NewMassRate(8.0, unit.KilogramPerSecond)
	m := NewMass(4.0, unit.Kilogram)

	f := r.DivMass(m)
	if !f.Equal(NewFrequency(2.0, unit.Hertz)) {
		t.Errorf("8 kg/s / 4 kg = %v, want 2 Hz", f)
	}

	if got := MassRateFromFrequency(m, f); !got.Equal(r) {
		t.Errorf("m * f = %v, want %v", got, r)
	}
	if got := r.DivFrequency(f); !got.Equal(m) {
		t.Errorf("r / f = %v, want %v", got, m)
	}
}

func TestMassRate_FromMassAndTime(t *testing.T) {
	m := NewMass(6.0, unit.Kilogram)
	elapsed := NewTime(3.0, unit.Second)

	r := MassRateFrom(m, elapsed)
	if !r.Equal(NewMassRate(2.0, unit.KilogramPerSecond)) {
		t.Errorf("6 kg / 3 s = %v, want 2 kg/s", r)
	}
	if got := r.MulTime(elapsed); !got.Equal(m) {
		t.Errorf("r * t = %v, want %v", got, m)
	}
	if got := MassFrom(r, elapsed); !got.Equal(m) {
		t.Errorf("MassFrom(r, t) = %v, want %v", got, m)
	}
}

func TestMass_Conversion(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   unit.Mass
		expect float64 // kilograms
	}{
		{"kg", 2, unit.Kilogram, 2},
		{"g", 500, unit.Gram, 0.5},
		{"lbm", 1, unit.Pound, 0.45359237},
		{"slug", 1, unit.Slug, 4.4482216152605 / 0.3048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMass(tt.value, tt.unit)
			if got := m.Value(); !approx(got, tt.expect, 1e-12) {
				t.Errorf("NewMass(%v, %v).Value() = %v, want %v", tt.value, tt.unit, got, tt.expect)
			}
		})
	}
}

func TestMassDensity_Relations(t *testing.T) {
	m := NewMass(12.0, unit.Kilogram)
	v := NewVolume(4.0, unit.CubicMetre)

	d := MassDensityFrom(m, v)
	if !d.Equal(NewMassDensity(3.0, unit.KilogramPerCubicMetre)) {
		t.Errorf("12 kg / 4 m^3 = %v, want 3 kg/m^3", d)
	}

	if got := d.MulVolume(v); !got.Equal(m) {
		t.Errorf("d * v = %v, want %v", got, m)
	}
	if got := v.MulMassDensity(d); !got.Equal(m) {
		t.Errorf("v * d = %v, want %v", got, m)
	}
	if got := MassFromDensity(d, v); !got.Equal(m) {
		t.Errorf("MassFromDensity = %v, want %v", got, m)
	}
	if got := m.DivVolume(v); !got.Equal(d) {
		t.Errorf("m / v = %v, want %v", got, d)
	}
}
