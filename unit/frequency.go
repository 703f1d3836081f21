package unit

// Frequency enumerates units of inverse time. The standard unit is the
// hertz. Strain rates are measured in the same units.
type Frequency uint8

const (
	// Hertz is the SI unit of frequency, one cycle per second.
	Hertz Frequency = iota
	Kilohertz
	Megahertz
	Gigahertz
	PerMinute
	PerHour
)

// Standard returns Hertz, the unit frequency quantities are stored in.
func (Frequency) Standard() Frequency { return Hertz }

// Multipliers to hertz, indexed by unit.
var frequencyFactors = [...]float64{
	Hertz:     1,
	Kilohertz: 1e3,
	Megahertz: 1e6,
	Gigahertz: 1e9,
	PerMinute: 1.0 / 60.0,
	PerHour:   1.0 / 3600.0,
}

// ToStandard converts a value in u to hertz.
func (u Frequency) ToStandard(value float64) float64 { return value * frequencyFactors[u] }

// FromStandard converts a value in hertz to u.
func (u Frequency) FromStandard(value float64) float64 { return value / frequencyFactors[u] }

// Abbreviation returns the short display form of u.
func (u Frequency) Abbreviation() string {
	switch u {
	case Hertz:
		return "Hz"
	case Kilohertz:
		return "kHz"
	case Megahertz:
		return "MHz"
	case Gigahertz:
		return "GHz"
	case PerMinute:
		return "/min"
	case PerHour:
		return "/hr"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Frequency) String() string { return u.Abbreviation() }

var frequencySpellings = spellingTable(map[string]Frequency{
	"Hz":        Hertz,
	"hertz":     Hertz,
	"/s":        Hertz,
	"1/s":       Hertz,
	"s^-1":      Hertz,
	"kHz":       Kilohertz,
	"kilohertz": Kilohertz,
	"MHz":       Megahertz,
	"megahertz": Megahertz,
	"GHz":       Gigahertz,
	"gigahertz": Gigahertz,
	"/min":      PerMinute,
	"1/min":     PerMinute,
	"min^-1":    PerMinute,
	"/hr":       PerHour,
	"1/hr":      PerHour,
	"hr^-1":     PerHour,
})

// ParseFrequency maps a free-form spelling such as "Hz" or "1/s" to a
// Frequency unit.
func ParseFrequency(spelling string) (Frequency, error) {
	return parse(frequencySpellings, spelling, "frequency")
}
