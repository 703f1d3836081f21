package unit

// SubstanceAmount enumerates units of amount of substance. The standard
// unit is the mole.
type SubstanceAmount uint8

const (
	// Mole is the SI base unit of amount of substance.
	Mole SubstanceAmount = iota
	Kilomole
	Millimole
)

// Standard returns Mole, the unit substance-amount quantities are stored
// in.
func (SubstanceAmount) Standard() SubstanceAmount { return Mole }

// Multipliers to moles, indexed by unit.
var substanceAmountFactors = [...]float64{
	Mole:      1,
	Kilomole:  1e3,
	Millimole: 1e-3,
}

// ToStandard converts a value in u to moles.
func (u SubstanceAmount) ToStandard(value float64) float64 { return value * substanceAmountFactors[u] }

// FromStandard converts a value in moles to u.
func (u SubstanceAmount) FromStandard(value float64) float64 {
	return value / substanceAmountFactors[u]
}

// Abbreviation returns the short display form of u.
func (u SubstanceAmount) Abbreviation() string {
	switch u {
	case Mole:
		return "mol"
	case Kilomole:
		return "kmol"
	case Millimole:
		return "mmol"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u SubstanceAmount) String() string { return u.Abbreviation() }

var substanceAmountSpellings = spellingTable(map[string]SubstanceAmount{
	"mol":        Mole,
	"mole":       Mole,
	"moles":      Mole,
	"kmol":       Kilomole,
	"kilomole":   Kilomole,
	"kilomoles":  Kilomole,
	"mmol":       Millimole,
	"millimole":  Millimole,
	"millimoles": Millimole,
})

// ParseSubstanceAmount maps a free-form spelling such as "mol" to a
// SubstanceAmount unit.
func ParseSubstanceAmount(spelling string) (SubstanceAmount, error) {
	return parse(substanceAmountSpellings, spelling, "substance amount")
}
