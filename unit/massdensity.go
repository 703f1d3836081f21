package unit

// MassDensity enumerates units of mass per volume. The standard unit is
// the kilogram per cubic metre.
type MassDensity uint8

const (
	// KilogramPerCubicMetre is the SI unit of mass density.
	KilogramPerCubicMetre MassDensity = iota
	GramPerCubicCentimetre
	TonnePerCubicMetre
	PoundPerCubicFoot
)

// Standard returns KilogramPerCubicMetre, the unit mass-density
// quantities are stored in.
func (MassDensity) Standard() MassDensity { return KilogramPerCubicMetre }

// Multipliers to kilograms per cubic metre, indexed by unit.
var massDensityFactors = [...]float64{
	KilogramPerCubicMetre:  1,
	GramPerCubicCentimetre: 1e3,
	TonnePerCubicMetre:     1e3,
	PoundPerCubicFoot:      0.45359237 / (0.3048 * 0.3048 * 0.3048),
}

// ToStandard converts a value in u to kilograms per cubic metre.
func (u MassDensity) ToStandard(value float64) float64 { return value * massDensityFactors[u] }

// FromStandard converts a value in kilograms per cubic metre to u.
func (u MassDensity) FromStandard(value float64) float64 { return value / massDensityFactors[u] }

// Abbreviation returns the short display form of u.
func (u MassDensity) Abbreviation() string {
	switch u {
	case KilogramPerCubicMetre:
		return "kg/m^3"
	case GramPerCubicCentimetre:
		return "g/cm^3"
	case TonnePerCubicMetre:
		return "t/m^3"
	case PoundPerCubicFoot:
		return "lbm/ft^3"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u MassDensity) String() string { return u.Abbreviation() }

var massDensitySpellings = spellingTable(map[string]MassDensity{
	"kg/m^3":   KilogramPerCubicMetre,
	"kg/m3":    KilogramPerCubicMetre,
	"kg/m³":    KilogramPerCubicMetre,
	"g/cm^3":   GramPerCubicCentimetre,
	"g/cm3":    GramPerCubicCentimetre,
	"g/cm³":    GramPerCubicCentimetre,
	"g/mL":     GramPerCubicCentimetre,
	"t/m^3":    TonnePerCubicMetre,
	"t/m3":     TonnePerCubicMetre,
	"t/m³":     TonnePerCubicMetre,
	"lbm/ft^3": PoundPerCubicFoot,
	"lbm/ft3":  PoundPerCubicFoot,
	"lb/ft^3":  PoundPerCubicFoot,
	"lb/ft3":   PoundPerCubicFoot,
	"pcf":      PoundPerCubicFoot,
})

// ParseMassDensity maps a free-form spelling such as "kg/m^3" to a
// MassDensity unit.
func ParseMassDensity(spelling string) (MassDensity, error) {
	return parse(massDensitySpellings, spelling, "mass density")
}
