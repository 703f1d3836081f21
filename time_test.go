package quant

import (
	"testing"

	"github.com/unitful/quant/unit"
)

func TestTime_Construction(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   unit.Time
		expect float64 // seconds
	}{
		{"seconds", 2, unit.Second, 2},
		{"milliseconds", 1500, unit.Millisecond, 1.5},
		{"minutes", 2, unit.Minute, 120},
		{"hours", 0.5, unit.Hour, 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTime(tt.value, tt.unit)
			if got := d.Value(); !approx(got, tt.expect, 1e-12) {
				t.Errorf("NewTime(%v, %v).Value() = %v, want %v", tt.value, tt.unit, got, tt.expect)
			}
		})
	}
}

func TestTime_Arithmetic(t *testing.T) {
	a := NewTime(90.0, unit.Second)
	b := NewTime(0.5, unit.Minute)

	if got := a.Add(b); !got.Equal(NewTime(2.0, unit.Minute)) {
		t.Errorf("90 s + 30 s = %v, want 2 min", got)
	}
	if got := a.Sub(b); !got.Equal(NewTime(60.0, unit.Second)) {
		t.Errorf("90 s - 30 s = %v, want 60 s", got)
	}
	if got := a.Mul(2); !got.Equal(NewTime(180.0, unit.Second)) {
		t.Errorf("90 s * 2 = %v, want 180 s", got)
	}
	if got := a.Div(3); !got.Equal(NewTime(30.0, unit.Second)) {
		t.Errorf("90 s / 3 = %v, want 30 s", got)
	}
	if got := a.Neg(); !got.Equal(NewTime(-90.0, unit.Second)) {
		t.Errorf("-(90 s) = %v, want -90 s", got)
	}
}

func TestTime_AdditiveIdentity(t *testing.T) {
	q := NewTime(42.0, unit.Second)

	if got := ZeroTime[float64]().Add(q); !got.Equal(q) {
		t.Errorf("Zero + %v = %v, want %v", q, got, q)
	}
}

func TestTime_ScalarDistributivity(t *testing.T) {
	a := NewTime(1.5, unit.Second)
	b := NewTime(2.25, unit.Second)
	const k = 4.0

	left := a.Add(b).Mul(k)
	right := a.Mul(k).Add(b.Mul(k))
	if !approx(left.Value(), right.Value(), 1e-12) {
		t.Errorf("(a+b)*k = %v, a*k + b*k = %v", left, right)
	}
}

func TestTime_Frequency(t *testing.T) {
	d := NewTime(2.0, unit.Second)

	if got := d.Frequency(); !got.Equal(NewFrequency(0.5, unit.Hertz)) {
		t.Errorf("1 / 2 s = %v, want 0.5 Hz", got)
	}
}

func TestFrequency_Period(t *testing.T) {
	f := NewFrequency(0.5, unit.Hertz)

	if got := f.Period(); !got.Equal(NewTime(2.0, unit.Second)) {
		t.Errorf("Period(0.5 Hz) = %v, want 2 s", got)
	}
}

func TestFrequency_PeriodOfZeroIsInfinite(t *testing.T) {
	p := ZeroFrequency[float64]().Period()

	if got := p.Value(); !(got > 0 && got > 1e308) {
		t.Errorf("Period(0 Hz).Value() = %v, want +Inf", got)
	}
}

func TestFrequency_Conversion(t *testing.T) {
	f := NewFrequency(1.0, unit.Kilohertz)

	if got := f.Value(); got != 1000.0 {
		t.Errorf("1 kHz = %v Hz, want 1000", got)
	}
	if got := f.In(unit.PerMinute); !approx(got, 60000.0, 1e-6) {
		t.Errorf("1 kHz = %v /min, want 60000", got)
	}
}

func TestFrequency_CycleCount(t *testing.T) {
	f := NewFrequency(50.0, unit.Hertz)
	d := NewTime(0.2, unit.Second)

	if got := f.MulTime(d); !approx(got, 10.0, 1e-12) {
		t.Errorf("50 Hz * 0.2 s = %v cycles, want 10", got)
	}
	if got := d.MulFrequency(f); !approx(got, 10.0, 1e-12) {
		t.Errorf("0.2 s * 50 Hz = %v cycles, want 10", got)
	}
}
