package unit

// Mass enumerates units of mass. The standard unit is the kilogram.
type Mass uint8

const (
	// Kilogram is the SI base unit of mass.
	Kilogram Mass = iota
	Gram
	Milligram
	Tonne
	Pound
	Slug
)

// Standard returns Kilogram, the unit mass quantities are stored in.
func (Mass) Standard() Mass { return Kilogram }

// Multipliers to kilograms, indexed by unit.
var massFactors = [...]float64{
	Kilogram:  1,
	Gram:      1e-3,
	Milligram: 1e-6,
	Tonne:     1e3,
	Pound:     0.45359237,
	Slug:      4.4482216152605 / 0.3048,
}

// ToStandard converts a value in u to kilograms.
func (u Mass) ToStandard(value float64) float64 { return value * massFactors[u] }

// FromStandard converts a value in kilograms to u.
func (u Mass) FromStandard(value float64) float64 { return value / massFactors[u] }

// Abbreviation returns the short display form of u.
func (u Mass) Abbreviation() string {
	switch u {
	case Kilogram:
		return "kg"
	case Gram:
		return "g"
	case Milligram:
		return "mg"
	case Tonne:
		return "t"
	case Pound:
		return "lbm"
	case Slug:
		return "slug"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Mass) String() string { return u.Abbreviation() }

var massSpellings = spellingTable(map[string]Mass{
	"kg":         Kilogram,
	"kilogram":   Kilogram,
	"kilograms":  Kilogram,
	"g":          Gram,
	"gram":       Gram,
	"grams":      Gram,
	"mg":         Milligram,
	"milligram":  Milligram,
	"milligrams": Milligram,
	"t":          Tonne,
	"tonne":      Tonne,
	"tonnes":     Tonne,
	"lbm":        Pound,
	"lb":         Pound,
	"lbs":        Pound,
	"pound":      Pound,
	"pounds":     Pound,
	"slug":       Slug,
	"slugs":      Slug,
})

// ParseMass maps a free-form spelling such as "kg" or "pounds" to a Mass
// unit.
func ParseMass(spelling string) (Mass, error) {
	return parse(massSpellings, spelling, "mass")
}
