package unit

// Energy enumerates units of energy. The standard unit is the joule.
type Energy uint8

const (
	// Joule is the SI unit of energy.
	Joule Energy = iota
	Millijoule
	Kilojoule
	Megajoule
	WattHour
	KilowattHour
	FootPound
)

// Standard returns Joule, the unit energy quantities are stored in.
func (Energy) Standard() Energy { return Joule }

// Multipliers to joules, indexed by unit.
var energyFactors = [...]float64{
	Joule:        1,
	Millijoule:   1e-3,
	Kilojoule:    1e3,
	Megajoule:    1e6,
	WattHour:     3600,
	KilowattHour: 3.6e6,
	FootPound:    4.4482216152605 * 0.3048,
}

// ToStandard converts a value in u to joules.
func (u Energy) ToStandard(value float64) float64 { return value * energyFactors[u] }

// FromStandard converts a value in joules to u.
func (u Energy) FromStandard(value float64) float64 { return value / energyFactors[u] }

// Abbreviation returns the short display form of u.
func (u Energy) Abbreviation() string {
	switch u {
	case Joule:
		return "J"
	case Millijoule:
		return "mJ"
	case Kilojoule:
		return "kJ"
	case Megajoule:
		return "MJ"
	case WattHour:
		return "W·hr"
	case KilowattHour:
		return "kW·hr"
	case FootPound:
		return "ft·lbf"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Energy) String() string { return u.Abbreviation() }

// "mJ" and "MJ" collide under case folding, so both stay exact-match
// only; the word spellings remain case-insensitive.
var energySpellings = spellingTable(map[string]Energy{
	"J":              Joule,
	"joule":          Joule,
	"joules":         Joule,
	"mJ":             Millijoule,
	"millijoule":     Millijoule,
	"millijoules":    Millijoule,
	"kJ":             Kilojoule,
	"kilojoule":      Kilojoule,
	"kilojoules":     Kilojoule,
	"MJ":             Megajoule,
	"megajoule":      Megajoule,
	"megajoules":     Megajoule,
	"W·hr":           WattHour,
	"Whr":            WattHour,
	"Wh":             WattHour,
	"watt-hour":      WattHour,
	"watt-hours":     WattHour,
	"kW·hr":          KilowattHour,
	"kWhr":           KilowattHour,
	"kWh":            KilowattHour,
	"kilowatt-hour":  KilowattHour,
	"kilowatt-hours": KilowattHour,
	"ft·lbf":         FootPound,
	"ft-lbf":         FootPound,
	"ft*lbf":         FootPound,
	"foot-pound":     FootPound,
	"foot-pounds":    FootPound,
})

// ParseEnergy maps a free-form spelling such as "J" or "kWh" to an
// Energy unit.
func ParseEnergy(spelling string) (Energy, error) {
	return parse(energySpellings, spelling, "energy")
}
