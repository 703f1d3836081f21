package unit

// MassRate enumerates units of mass flow. The standard unit is the
// kilogram per second.
type MassRate uint8

const (
	// KilogramPerSecond is the SI unit of mass flow.
	KilogramPerSecond MassRate = iota
	GramPerSecond
	KilogramPerMinute
	KilogramPerHour
	PoundPerSecond
)

// Standard returns KilogramPerSecond, the unit mass-rate quantities are
// stored in.
func (MassRate) Standard() MassRate { return KilogramPerSecond }

// Multipliers to kilograms per second, indexed by unit.
var massRateFactors = [...]float64{
	KilogramPerSecond: 1,
	GramPerSecond:     1e-3,
	KilogramPerMinute: 1.0 / 60.0,
	KilogramPerHour:   1.0 / 3600.0,
	PoundPerSecond:    0.45359237,
}

// ToStandard converts a value in u to kilograms per second.
func (u MassRate) ToStandard(value float64) float64 { return value * massRateFactors[u] }

// FromStandard converts a value in kilograms per second to u.
func (u MassRate) FromStandard(value float64) float64 { return value / massRateFactors[u] }

// Abbreviation returns the short display form of u.
func (u MassRate) Abbreviation() string {
	switch u {
	case KilogramPerSecond:
		return "kg/s"
	case GramPerSecond:
		return "g/s"
	case KilogramPerMinute:
		return "kg/min"
	case KilogramPerHour:
		return "kg/hr"
	case PoundPerSecond:
		return "lbm/s"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u MassRate) String() string { return u.Abbreviation() }

var massRateSpellings = spellingTable(map[string]MassRate{
	"kg/s":                 KilogramPerSecond,
	"kilogram/second":      KilogramPerSecond,
	"kilograms/second":     KilogramPerSecond,
	"kilograms per second": KilogramPerSecond,
	"g/s":                  GramPerSecond,
	"gram/second":          GramPerSecond,
	"grams per second":     GramPerSecond,
	"kg/min":               KilogramPerMinute,
	"kilograms per minute": KilogramPerMinute,
	"kg/hr":                KilogramPerHour,
	"kilograms per hour":   KilogramPerHour,
	"lbm/s":                PoundPerSecond,
	"lb/s":                 PoundPerSecond,
	"pounds per second":    PoundPerSecond,
})

// ParseMassRate maps a free-form spelling such as "kg/s" to a MassRate
// unit.
func ParseMassRate(spelling string) (MassRate, error) {
	return parse(massRateSpellings, spelling, "mass rate")
}
