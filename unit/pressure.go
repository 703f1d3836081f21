package unit

// Pressure enumerates units of pressure. The standard unit is the
// pascal.
type Pressure uint8

const (
	// Pascal is the SI unit of pressure.
	Pascal Pressure = iota
	Kilopascal
	Megapascal
	Bar
	Atmosphere
	PoundPerSquareInch
)

// Standard returns Pascal, the unit pressure quantities are stored in.
func (Pressure) Standard() Pressure { return Pascal }

// Multipliers to pascals, indexed by unit.
var pressureFactors = [...]float64{
	Pascal:             1,
	Kilopascal:         1e3,
	Megapascal:         1e6,
	Bar:                1e5,
	Atmosphere:         101325,
	PoundPerSquareInch: 4.4482216152605 / (0.0254 * 0.0254),
}

// ToStandard converts a value in u to pascals.
func (u Pressure) ToStandard(value float64) float64 { return value * pressureFactors[u] }

// FromStandard converts a value in pascals to u.
func (u Pressure) FromStandard(value float64) float64 { return value / pressureFactors[u] }

// Abbreviation returns the short display form of u.
func (u Pressure) Abbreviation() string {
	switch u {
	case Pascal:
		return "Pa"
	case Kilopascal:
		return "kPa"
	case Megapascal:
		return "MPa"
	case Bar:
		return "bar"
	case Atmosphere:
		return "atm"
	case PoundPerSquareInch:
		return "psi"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Pressure) String() string { return u.Abbreviation() }

var pressureSpellings = spellingTable(map[string]Pressure{
	"Pa":          Pascal,
	"pascal":      Pascal,
	"pascals":     Pascal,
	"kPa":         Kilopascal,
	"kilopascal":  Kilopascal,
	"kilopascals": Kilopascal,
	"MPa":         Megapascal,
	"megapascal":  Megapascal,
	"megapascals": Megapascal,
	"bar":         Bar,
	"bars":        Bar,
	"atm":         Atmosphere,
	"atmosphere":  Atmosphere,
	"atmospheres": Atmosphere,
	"psi":         PoundPerSquareInch,
	"lbf/in^2":    PoundPerSquareInch,
	"lbf/in2":     PoundPerSquareInch,
})

// ParsePressure maps a free-form spelling such as "Pa" or "psi" to a
// Pressure unit.
func ParsePressure(spelling string) (Pressure, error) {
	return parse(pressureSpellings, spelling, "pressure")
}
