package quant

import "testing"

func TestDimensions_Equal(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Dimensions
		expect bool
	}{
		{"zero", Dimensions{}, Dimensions{}, true},
		{"same", Dimensions{Time: -1, Length: 1}, Dimensions{Time: -1, Length: 1}, true},
		{"differ in time", Dimensions{Time: -1}, Dimensions{Time: -2}, false},
		{"differ in mass", Dimensions{Mass: 1}, Dimensions{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expect {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestDimensions_Compare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Dimensions
		expect int
	}{
		{"equal", Dimensions{Length: 1}, Dimensions{Length: 1}, 0},
		{"lower time exponent", Dimensions{Time: -1}, Dimensions{Time: 1}, -1},
		{"higher length exponent", Dimensions{Length: 2}, Dimensions{Length: 1}, 1},
		{"time decides before length", Dimensions{Time: -1, Length: 5}, Dimensions{Time: 1, Length: -5}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expect {
				t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestDimensions_String(t *testing.T) {
	tests := []struct {
		name   string
		d      Dimensions
		expect string
	}{
		{"dimensionless", Dimensions{}, "1"},
		{"time", Dimensions{Time: 1}, "T"},
		{"frequency", Dimensions{Time: -1}, "T^(-1)"},
		{"speed", Dimensions{Time: -1, Length: 1}, "T^(-1)·L"},
		{"energy", Dimensions{Time: -2, Length: 2, Mass: 1}, "T^(-2)·L^(2)·M"},
		{"temperature", Dimensions{Temperature: 1}, "Θ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestDimensions_MulDiv(t *testing.T) {
	length := Length[float64]{}.Dimensions()
	timeDim := Time[float64]{}.Dimensions()

	if got := length.Div(timeDim); !got.Equal(Speed[float64]{}.Dimensions()) {
		t.Errorf("L/T = %v, want speed dimensions", got)
	}
	if got := length.Mul(length); !got.Equal(Area[float64]{}.Dimensions()) {
		t.Errorf("L*L = %v, want area dimensions", got)
	}
}

// Every cross-kind operator corresponds to a physical identity; the
// dimension vectors of the kinds must agree with the exponent algebra.
func TestDimensions_FormulaConsistency(t *testing.T) {
	var (
		timeDim      = Time[float64]{}.Dimensions()
		frequency    = Frequency[float64]{}.Dimensions()
		length       = Length[float64]{}.Dimensions()
		area         = Area[float64]{}.Dimensions()
		volume       = Volume[float64]{}.Dimensions()
		mass         = Mass[float64]{}.Dimensions()
		massRate     = MassRate[float64]{}.Dimensions()
		massDensity  = MassDensity[float64]{}.Dimensions()
		speed        = Speed[float64]{}.Dimensions()
		acceleration = Acceleration[float64]{}.Dimensions()
		force        = Force[float64]{}.Dimensions()
		pressure     = Pressure[float64]{}.Dimensions()
		energy       = Energy[float64]{}.Dimensions()
		power        = Power[float64]{}.Dimensions()
		angularSpeed = AngularSpeed[float64]{}.Dimensions()
	)

	tests := []struct {
		name   string
		got    Dimensions
		expect Dimensions
	}{
		{"frequency = 1/time", Dimensionless.Div(timeDim), frequency},
		{"speed = length/time", length.Div(timeDim), speed},
		{"acceleration = speed/time", speed.Div(timeDim), acceleration},
		{"area = length*length", length.Mul(length), area},
		{"volume = area*length", area.Mul(length), volume},
		{"mass rate = mass/time", mass.Div(timeDim), massRate},
		{"mass density = mass/volume", mass.Div(volume), massDensity},
		{"force = mass*acceleration", mass.Mul(acceleration), force},
		{"pressure = force/area", force.Div(area), pressure},
		{"energy = force*length", force.Mul(length), energy},
		{"power = energy/time", energy.Div(timeDim), power},
		{"angular speed = 1/time", Dimensionless.Div(timeDim), angularSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.expect) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}
