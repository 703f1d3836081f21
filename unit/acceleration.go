package unit

// Acceleration enumerates units of acceleration. The standard unit is
// the metre per square second.
type Acceleration uint8

const (
	// MetrePerSquareSecond is the SI unit of acceleration.
	MetrePerSquareSecond Acceleration = iota
	MillimetrePerSquareSecond
	FootPerSquareSecond
	InchPerSquareSecond
)

// Standard returns MetrePerSquareSecond, the unit acceleration
// quantities are stored in.
func (Acceleration) Standard() Acceleration { return MetrePerSquareSecond }

// Multipliers to metres per square second, indexed by unit.
var accelerationFactors = [...]float64{
	MetrePerSquareSecond:      1,
	MillimetrePerSquareSecond: 1e-3,
	FootPerSquareSecond:       0.3048,
	InchPerSquareSecond:       0.0254,
}

// ToStandard converts a value in u to metres per square second.
func (u Acceleration) ToStandard(value float64) float64 { return value * accelerationFactors[u] }

// FromStandard converts a value in metres per square second to u.
func (u Acceleration) FromStandard(value float64) float64 { return value / accelerationFactors[u] }

// Abbreviation returns the short display form of u.
func (u Acceleration) Abbreviation() string {
	switch u {
	case MetrePerSquareSecond:
		return "m/s^2"
	case MillimetrePerSquareSecond:
		return "mm/s^2"
	case FootPerSquareSecond:
		return "ft/s^2"
	case InchPerSquareSecond:
		return "in/s^2"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Acceleration) String() string { return u.Abbreviation() }

var accelerationSpellings = spellingTable(map[string]Acceleration{
	"m/s^2":  MetrePerSquareSecond,
	"m/s2":   MetrePerSquareSecond,
	"m/s/s":  MetrePerSquareSecond,
	"mm/s^2": MillimetrePerSquareSecond,
	"mm/s2":  MillimetrePerSquareSecond,
	"ft/s^2": FootPerSquareSecond,
	"ft/s2":  FootPerSquareSecond,
	"in/s^2": InchPerSquareSecond,
	"in/s2":  InchPerSquareSecond,
})

// ParseAcceleration maps a free-form spelling such as "m/s^2" to an
// Acceleration unit.
func ParseAcceleration(spelling string) (Acceleration, error) {
	return parse(accelerationSpellings, spelling, "acceleration")
}
