package quant

import (
	"math"
	"testing"

	"github.com/unitful/quant/unit"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		expect string
	}{
		{"integer gains fraction", 1, "1.0"},
		{"zero", 0, "0.0"},
		{"negative integer", -4, "-4.0"},
		{"half", 0.5, "0.5"},
		{"shortest round-trip", 2.25, "2.25"},
		{"third", 1.0 / 3.0, "0.3333333333333333"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatNumber(tt.value); got != tt.expect {
				t.Errorf("formatNumber(%v) = %q, want %q", tt.value, got, tt.expect)
			}
		})
	}
}

func TestFormatNumberPrecision(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		digits int
		expect string
	}{
		{"two digits", 2.0 / 3.0, 2, "0.67"},
		{"zero digits", 2.5, 0, "2"},
		{"padded", 1, 3, "1.000"},
		{"negative digits clamp to zero", 1.9, -1, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatNumberPrecision(tt.value, tt.digits); got != tt.expect {
				t.Errorf("formatNumberPrecision(%v, %d) = %q, want %q", tt.value, tt.digits, got, tt.expect)
			}
		})
	}
}

func TestSerialization_Exact(t *testing.T) {
	e := NewEnergy(1.0, unit.Joule)

	if got, want := e.JSON(), `{"value":1.0,"unit":"J"}`; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
	if got, want := e.Print(), "1.0 J"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
	if got, want := e.XML(), "<value>1.0</value><unit>J</unit>"; got != want {
		t.Errorf("XML() = %q, want %q", got, want)
	}
	if got, want := e.YAML(), `{value:1.0,unit:"J"}`; got != want {
		t.Errorf("YAML() = %q, want %q", got, want)
	}
}

func TestSerialization_InUnit(t *testing.T) {
	s := NewSpeed(5.0, unit.MetrePerSecond)

	if got, want := s.PrintIn(unit.KilometrePerHour), "18.0 km/hr"; got != want {
		t.Errorf("PrintIn() = %q, want %q", got, want)
	}
	if got, want := s.JSONIn(unit.KilometrePerHour), `{"value":18.0,"unit":"km/hr"}`; got != want {
		t.Errorf("JSONIn() = %q, want %q", got, want)
	}
	if got, want := s.XMLIn(unit.MillimetrePerSecond), "<value>5000.0</value><unit>mm/s</unit>"; got != want {
		t.Errorf("XMLIn() = %q, want %q", got, want)
	}
	if got, want := s.YAMLIn(unit.KilometrePerHour), `{value:18.0,unit:"km/hr"}`; got != want {
		t.Errorf("YAMLIn() = %q, want %q", got, want)
	}
}

func TestSerialization_Precision(t *testing.T) {
	l := NewLength(2.0/3.0, unit.Metre)

	if got, want := l.PrintPrecision(3), "0.667 m"; got != want {
		t.Errorf("PrintPrecision(3) = %q, want %q", got, want)
	}
	if got, want := l.JSONPrecision(2), `{"value":0.67,"unit":"m"}`; got != want {
		t.Errorf("JSONPrecision(2) = %q, want %q", got, want)
	}
	if got, want := l.PrintInPrecision(unit.Centimetre, 1), "66.7 cm"; got != want {
		t.Errorf("PrintInPrecision() = %q, want %q", got, want)
	}
	if got, want := l.XMLPrecision(1), "<value>0.7</value><unit>m</unit>"; got != want {
		t.Errorf("XMLPrecision(1) = %q, want %q", got, want)
	}
	if got, want := l.YAMLPrecision(1), `{value:0.7,unit:"m"}`; got != want {
		t.Errorf("YAMLPrecision(1) = %q, want %q", got, want)
	}
}

func TestSerialization_Dimensionless(t *testing.T) {
	s := NewStrain(0.25)

	if got, want := s.Print(), "0.25"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
	if got, want := s.JSON(), "0.25"; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
	if got, want := s.PrintPrecision(3), "0.250"; got != want {
		t.Errorf("PrintPrecision(3) = %q, want %q", got, want)
	}
}

func TestSerialization_Float32(t *testing.T) {
	// float32 values format at float32 precision, not as their widened
	// float64 representation.
	e := NewEnergy[float32](0.1, unit.Joule)

	if got, want := e.JSON(), `{"value":0.1,"unit":"J"}`; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestSI(t *testing.T) {
	tests := []struct {
		name   string
		got    string
		expect string
	}{
		{"kilo", NewEnergy(2500.0, unit.Joule).SI(1), "2.5 kJ"},
		{"unit scale", NewEnergy(1.0, unit.Joule).SI(0), "1 J"},
		{"milli", NewTime(0.002, unit.Second).SI(0), "2 ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("SI() = %q, want %q", tt.got, tt.expect)
			}
		})
	}
}
