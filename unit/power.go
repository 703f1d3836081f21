package unit

// Power enumerates units of power. The standard unit is the watt.
type Power uint8

const (
	// Watt is the SI unit of power.
	Watt Power = iota
	Milliwatt
	Kilowatt
	Megawatt
	FootPoundPerSecond
	Horsepower
)

// Standard returns Watt, the unit power quantities are stored in.
func (Power) Standard() Power { return Watt }

// Multipliers to watts, indexed by unit.
var powerFactors = [...]float64{
	Watt:               1,
	Milliwatt:          1e-3,
	Kilowatt:           1e3,
	Megawatt:           1e6,
	FootPoundPerSecond: 4.4482216152605 * 0.3048,
	Horsepower:         550 * 4.4482216152605 * 0.3048,
}

// ToStandard converts a value in u to watts.
func (u Power) ToStandard(value float64) float64 { return value * powerFactors[u] }

// FromStandard converts a value in watts to u.
func (u Power) FromStandard(value float64) float64 { return value / powerFactors[u] }

// Abbreviation returns the short display form of u.
func (u Power) Abbreviation() string {
	switch u {
	case Watt:
		return "W"
	case Milliwatt:
		return "mW"
	case Kilowatt:
		return "kW"
	case Megawatt:
		return "MW"
	case FootPoundPerSecond:
		return "ft·lbf/s"
	case Horsepower:
		return "hp"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Power) String() string { return u.Abbreviation() }

// "mW" and "MW" collide under case folding, so both stay exact-match
// only; the word spellings remain case-insensitive.
var powerSpellings = spellingTable(map[string]Power{
	"W":                      Watt,
	"watt":                   Watt,
	"watts":                  Watt,
	"mW":                     Milliwatt,
	"milliwatt":              Milliwatt,
	"milliwatts":             Milliwatt,
	"kW":                     Kilowatt,
	"kilowatt":               Kilowatt,
	"kilowatts":              Kilowatt,
	"MW":                     Megawatt,
	"megawatt":               Megawatt,
	"megawatts":              Megawatt,
	"ft·lbf/s":               FootPoundPerSecond,
	"ft-lbf/s":               FootPoundPerSecond,
	"ft*lbf/s":               FootPoundPerSecond,
	"foot-pounds per second": FootPoundPerSecond,
	"hp":                     Horsepower,
	"horsepower":             Horsepower,
})

// ParsePower maps a free-form spelling such as "W" or "hp" to a Power
// unit.
func ParsePower(spelling string) (Power, error) {
	return parse(powerSpellings, spelling, "power")
}
