package unit

// Speed enumerates units of speed. The standard unit is the metre per
// second.
type Speed uint8

const (
	// MetrePerSecond is the SI unit of speed.
	MetrePerSecond Speed = iota
	MillimetrePerSecond
	KilometrePerHour
	FootPerSecond
	MilePerHour
	Knot
)

// Standard returns MetrePerSecond, the unit speed quantities are stored
// in.
func (Speed) Standard() Speed { return MetrePerSecond }

// Multipliers to metres per second, indexed by unit.
var speedFactors = [...]float64{
	MetrePerSecond:      1,
	MillimetrePerSecond: 1e-3,
	KilometrePerHour:    1000.0 / 3600.0,
	FootPerSecond:       0.3048,
	MilePerHour:         1609.344 / 3600.0,
	Knot:                1852.0 / 3600.0,
}

// ToStandard converts a value in u to metres per second.
func (u Speed) ToStandard(value float64) float64 { return value * speedFactors[u] }

// FromStandard converts a value in metres per second to u.
func (u Speed) FromStandard(value float64) float64 { return value / speedFactors[u] }

// Abbreviation returns the short display form of u.
func (u Speed) Abbreviation() string {
	switch u {
	case MetrePerSecond:
		return "m/s"
	case MillimetrePerSecond:
		return "mm/s"
	case KilometrePerHour:
		return "km/hr"
	case FootPerSecond:
		return "ft/s"
	case MilePerHour:
		return "mi/hr"
	case Knot:
		return "kn"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Speed) String() string { return u.Abbreviation() }

var speedSpellings = spellingTable(map[string]Speed{
	"m/s":                    MetrePerSecond,
	"metres per second":      MetrePerSecond,
	"meters per second":      MetrePerSecond,
	"mm/s":                   MillimetrePerSecond,
	"millimetres per second": MillimetrePerSecond,
	"km/hr":                  KilometrePerHour,
	"km/h":                   KilometrePerHour,
	"kph":                    KilometrePerHour,
	"kilometres per hour":    KilometrePerHour,
	"kilometers per hour":    KilometrePerHour,
	"ft/s":                   FootPerSecond,
	"fps":                    FootPerSecond,
	"feet per second":        FootPerSecond,
	"mi/hr":                  MilePerHour,
	"mph":                    MilePerHour,
	"miles per hour":         MilePerHour,
	"kn":                     Knot,
	"kt":                     Knot,
	"knot":                   Knot,
	"knots":                  Knot,
})

// ParseSpeed maps a free-form spelling such as "m/s" or "mph" to a Speed
// unit.
func ParseSpeed(spelling string) (Speed, error) {
	return parse(speedSpellings, spelling, "speed")
}
