package quant

import (
	"testing"

	"github.com/unitful/quant/unit"
)

func TestEnergy_Conversion(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   unit.Energy
		expect float64 // joules
	}{
		{"J", 3, unit.Joule, 3},
		{"mJ", 250, unit.Millijoule, 0.25},
		{"kJ", 1.5, unit.Kilojoule, 1500},
		{"Whr", 1, unit.WattHour, 3600},
		{"kWhr", 1, unit.KilowattHour, 3.6e6},
		{"ftlbf", 1, unit.FootPound, 4.4482216152605 * 0.3048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnergy(tt.value, tt.unit)
			if got := e.Value(); !approx(got, tt.expect, 1e-9) {
				t.Errorf("NewEnergy(%v, %v).Value() = %v, want %v", tt.value, tt.unit, got, tt.expect)
			}
		})
	}
}

func TestEnergy_ForceTimesLength(t *testing.T) {
	f := NewForce(5.0, unit.Newton)
	l := NewLength(4.0, unit.Metre)

	e := EnergyFrom(f, l)
	if !e.Equal(NewEnergy(20.0, unit.Joule)) {
		t.Errorf("5 N * 4 m = %v, want 20 J", e)
	}

	if got := e.DivLength(l); !got.Equal(f) {
		t.Errorf("e / l = %v, want %v", got, f)
	}
	if got := e.DivForce(f); !got.Equal(l) {
		t.Errorf("e / f = %v, want %v", got, l)
	}
	if got := f.MulLength(l); !got.Equal(e) {
		t.Errorf("f * l = %v, want %v", got, e)
	}
}

func TestEnergy_PowerTimesTime(t *testing.T) {
	p := NewPower(1.5, unit.Kilowatt)
	elapsed := NewTime(2.0, unit.Hour)

	e := EnergyFromPower(p, elapsed)
	if got := e.In(unit.KilowattHour); !approx(got, 3.0, 1e-12) {
		t.Errorf("1.5 kW * 2 hr = %v kW·hr, want 3", got)
	}

	if got := e.DivTime(elapsed); !got.Equal(p) {
		t.Errorf("e / t = %v, want %v", got, p)
	}
	if got := e.DivPower(p); !got.Equal(elapsed) {
		t.Errorf("e / p = %v, want %v", got, elapsed)
	}
	if got := PowerFrom(e, elapsed); !got.Equal(p) {
		t.Errorf("PowerFrom = %v, want %v", got, p)
	}
}

func TestPower_EnergyTimesFrequency(t *testing.T) {
	e := NewEnergy(6.0, unit.Joule)
	f := NewFrequency(2.0, unit.Hertz)

	p := PowerFromFrequency(e, f)
	if !p.Equal(NewPower(12.0, unit.Watt)) {
		t.Errorf("6 J * 2 Hz = %v, want 12 W", p)
	}
	if got := p.DivEnergy(e); !got.Equal(f) {
		t.Errorf("p / e = %v, want %v", got, f)
	}
	if got := p.DivFrequency(f); !got.Equal(e) {
		t.Errorf("p / f = %v, want %v", got, e)
	}
}

func TestForce_MassTimesAcceleration(t *testing.T) {
	m := NewMass(2.0, unit.Kilogram)
	a := NewAcceleration(9.80665, unit.MetrePerSquareSecond)

	f := ForceFrom(m, a)
	if got := f.Value(); !approx(got, 19.6133, 1e-12) {
		t.Errorf("2 kg * 9.80665 m/s^2 = %v N, want 19.6133", got)
	}

	if got := f.DivMass(m); !got.Equal(a) {
		t.Errorf("f / m = %v, want %v", got, a)
	}
	if got := f.DivAcceleration(a); !got.Equal(m) {
		t.Errorf("f / a = %v, want %v", got, m)
	}
	if got := m.MulAcceleration(a); !got.Equal(f) {
		t.Errorf("m * a = %v, want %v", got, f)
	}
}

func TestPressure_ForceOverArea(t *testing.T) {
	f := NewForce(100.0, unit.Newton)
	a := NewArea(4.0, unit.SquareMetre)

	p := PressureFrom(f, a)
	if !p.Equal(NewPressure(25.0, unit.Pascal)) {
		t.Errorf("100 N / 4 m^2 = %v, want 25 Pa", p)
	}

	if got := p.MulArea(a); !got.Equal(f) {
		t.Errorf("p * a = %v, want %v", got, f)
	}
	if got := a.MulPressure(p); !got.Equal(f) {
		t.Errorf("a * p = %v, want %v", got, f)
	}
	if got := f.DivPressure(p); !got.Equal(a) {
		t.Errorf("f / p = %v, want %v", got, a)
	}
}

func TestPressure_Conversion(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   unit.Pressure
		expect float64 // pascals
	}{
		{"kPa", 101.325, unit.Kilopascal, 101325},
		{"bar", 1, unit.Bar, 100000},
		{"atm", 1, unit.Atmosphere, 101325},
		{"psi", 1, unit.PoundPerSquareInch, 4.4482216152605 / (0.0254 * 0.0254)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPressure(tt.value, tt.unit)
			if got := p.Value(); !approx(got, tt.expect, 1e-6) {
				t.Errorf("NewPressure(%v, %v).Value() = %v, want %v", tt.value, tt.unit, got, tt.expect)
			}
		})
	}
}
