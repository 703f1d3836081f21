package unit

// ElectricCurrent enumerates units of electric current. The standard
// unit is the ampere.
type ElectricCurrent uint8

const (
	// Ampere is the SI base unit of electric current.
	Ampere ElectricCurrent = iota
	Kiloampere
	Milliampere
	Microampere
)

// Standard returns Ampere, the unit electric-current quantities are
// stored in.
func (ElectricCurrent) Standard() ElectricCurrent { return Ampere }

// Multipliers to amperes, indexed by unit.
var electricCurrentFactors = [...]float64{
	Ampere:      1,
	Kiloampere:  1e3,
	Milliampere: 1e-3,
	Microampere: 1e-6,
}

// ToStandard converts a value in u to amperes.
func (u ElectricCurrent) ToStandard(value float64) float64 { return value * electricCurrentFactors[u] }

// FromStandard converts a value in amperes to u.
func (u ElectricCurrent) FromStandard(value float64) float64 {
	return value / electricCurrentFactors[u]
}

// Abbreviation returns the short display form of u.
func (u ElectricCurrent) Abbreviation() string {
	switch u {
	case Ampere:
		return "A"
	case Kiloampere:
		return "kA"
	case Milliampere:
		return "mA"
	case Microampere:
		return "μA"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u ElectricCurrent) String() string { return u.Abbreviation() }

var electricCurrentSpellings = spellingTable(map[string]ElectricCurrent{
	"A":            Ampere,
	"amp":          Ampere,
	"amps":         Ampere,
	"ampere":       Ampere,
	"amperes":      Ampere,
	"kA":           Kiloampere,
	"kiloampere":   Kiloampere,
	"kiloamperes":  Kiloampere,
	"mA":           Milliampere,
	"milliampere":  Milliampere,
	"milliamperes": Milliampere,
	"μA":           Microampere,
	"uA":           Microampere,
	"microampere":  Microampere,
	"microamperes": Microampere,
})

// ParseElectricCurrent maps a free-form spelling such as "A" or "mA" to
// an ElectricCurrent unit.
func ParseElectricCurrent(spelling string) (ElectricCurrent, error) {
	return parse(electricCurrentSpellings, spelling, "electric current")
}
