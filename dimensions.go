package quant

import (
	"strconv"
	"strings"
)

// Dimensions describes a physical dimension as the exponents of the
// seven SI base dimensions. Two quantity kinds are dimensionally
// compatible iff their Dimensions compare equal.
//
// Dimensions is an immutable value type; the zero value is
// dimensionless.
type Dimensions struct {
	Time              int8
	Length            int8
	Mass              int8
	ElectricCurrent   int8
	Temperature       int8
	SubstanceAmount   int8
	LuminousIntensity int8
}

// Dimensionless is the zero exponent vector.
var Dimensionless = Dimensions{}

// Equal reports whether d and o carry the same exponent on every base
// dimension.
func (d Dimensions) Equal(o Dimensions) bool { return d == o }

// Compare orders dimension vectors by their exponents, base dimension by
// base dimension. It returns -1 if d sorts before o, +1 if after, and 0
// if they are equal.
func (d Dimensions) Compare(o Dimensions) int {
	a := [7]int8{d.Time, d.Length, d.Mass, d.ElectricCurrent, d.Temperature, d.SubstanceAmount, d.LuminousIntensity}
	b := [7]int8{o.Time, o.Length, o.Mass, o.ElectricCurrent, o.Temperature, o.SubstanceAmount, o.LuminousIntensity}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Mul returns the dimension of a product of quantities with dimensions d
// and o.
func (d Dimensions) Mul(o Dimensions) Dimensions {
	return Dimensions{
		Time:              d.Time + o.Time,
		Length:            d.Length + o.Length,
		Mass:              d.Mass + o.Mass,
		ElectricCurrent:   d.ElectricCurrent + o.ElectricCurrent,
		Temperature:       d.Temperature + o.Temperature,
		SubstanceAmount:   d.SubstanceAmount + o.SubstanceAmount,
		LuminousIntensity: d.LuminousIntensity + o.LuminousIntensity,
	}
}

// Div returns the dimension of a quotient of quantities with dimensions
// d and o.
func (d Dimensions) Div(o Dimensions) Dimensions {
	return Dimensions{
		Time:              d.Time - o.Time,
		Length:            d.Length - o.Length,
		Mass:              d.Mass - o.Mass,
		ElectricCurrent:   d.ElectricCurrent - o.ElectricCurrent,
		Temperature:       d.Temperature - o.Temperature,
		SubstanceAmount:   d.SubstanceAmount - o.SubstanceAmount,
		LuminousIntensity: d.LuminousIntensity - o.LuminousIntensity,
	}
}

// String renders the dimension with the conventional base symbols, e.g.
// "T^(-2)·L·M" for force. The dimensionless vector renders as "1".
func (d Dimensions) String() string {
	var parts []string
	part := func(symbol string, exp int8) {
		switch {
		case exp == 0:
		case exp == 1:
			parts = append(parts, symbol)
		default:
			parts = append(parts, symbol+"^("+strconv.Itoa(int(exp))+")")
		}
	}
	part("T", d.Time)
	part("L", d.Length)
	part("M", d.Mass)
	part("I", d.ElectricCurrent)
	part("Θ", d.Temperature)
	part("N", d.SubstanceAmount)
	part("J", d.LuminousIntensity)
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}
