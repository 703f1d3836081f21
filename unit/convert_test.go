package unit

import (
	"math"
	"testing"
)

func TestConvert_Identity(t *testing.T) {
	// Conversion between a unit and itself must be bit-exact, even for
	// units whose factor is not a power of two.
	values := []float64{0, 1, 0.1, 2.0 / 3.0, 1e-300, 1e300, -7.25}

	for _, v := range values {
		if got := Convert(v, Mile, Mile); got != v {
			t.Errorf("Convert(%v, Mile, Mile) = %v, want identical", v, got)
		}
		if got := Convert(v, Fahrenheit, Fahrenheit); got != v {
			t.Errorf("Convert(%v, Fahrenheit, Fahrenheit) = %v, want identical", v, got)
		}
		if got := Convert(v, Horsepower, Horsepower); got != v {
			t.Errorf("Convert(%v, Horsepower, Horsepower) = %v, want identical", v, got)
		}
	}
}

func TestConvert_Known(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"1 hr in s", Convert(1.0, Hour, Second), 3600},
		{"90 s in min", Convert(90.0, Second, Minute), 1.5},
		{"1 mi in m", Convert(1.0, Mile, Metre), 1609.344},
		{"1 nmi in m", Convert(1.0, NauticalMile, Metre), 1852},
		{"1 in in mm", Convert(1.0, Inch, Millimetre), 25.4},
		{"3 ft in in", Convert(3.0, Foot, Inch), 36},
		{"1 kWhr in J", Convert(1.0, KilowattHour, Joule), 3.6e6},
		{"1 atm in Pa", Convert(1.0, Atmosphere, Pascal), 101325},
		{"1 L in m^3", Convert(1.0, Litre, CubicMetre), 1e-3},
		{"1 kHz in /min", Convert(1.0, Kilohertz, PerMinute), 60000},
		{"1 rev in deg", Convert(1.0, Revolution, Degree), 360},
		{"1 kA in A", Convert(1.0, Kiloampere, Ampere), 1000},
		{"1 kmol in mol", Convert(1.0, Kilomole, Mole), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9*math.Abs(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	lengths := []Length{Metre, Millimetre, Centimetre, Kilometre, Micrometre, Nanometre, Inch, Foot, Yard, Mile, NauticalMile}

	for _, from := range lengths {
		for _, to := range lengths {
			v := 12.5
			back := Convert(Convert(v, from, to), to, from)
			if math.Abs(back-v) > 1e-12*v {
				t.Errorf("%v -> %v -> %v: got %v, want %v", from, to, from, back, v)
			}
		}
	}
}

func TestConvert_Float32(t *testing.T) {
	got := Convert(float32(2), Kilometre, Metre)
	if got != 2000 {
		t.Errorf("Convert(float32(2), Kilometre, Metre) = %v, want 2000", got)
	}
}

func TestStandard_IsZeroValue(t *testing.T) {
	// The zero value of every unit kind is its standard unit, so an
	// uninitialized unit field stores and displays correctly.
	if Time(0) != Second || Time(0).Standard() != Second {
		t.Error("zero Time is not Second")
	}
	if Length(0) != Metre || Length(0).Standard() != Metre {
		t.Error("zero Length is not Metre")
	}
	if Energy(0) != Joule || Energy(0).Standard() != Joule {
		t.Error("zero Energy is not Joule")
	}
	if TemperatureDifference(0) != Kelvin {
		t.Error("zero TemperatureDifference is not Kelvin")
	}
}

func TestAbbreviation_Stringer(t *testing.T) {
	tests := []struct {
		unit interface{ String() string }
		want string
	}{
		{Second, "s"},
		{Microsecond, "μs"},
		{Hour, "hr"},
		{Hertz, "Hz"},
		{SquareMetre, "m^2"},
		{KilometrePerHour, "km/hr"},
		{MetrePerSquareSecond, "m/s^2"},
		{KilowattHour, "kW·hr"},
		{FootPound, "ft·lbf"},
		{Celsius, "°C"},
		{Microampere, "μA"},
		{PoundPerSquareInch, "psi"},
	}

	for _, tt := range tests {
		if got := tt.unit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
