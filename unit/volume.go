package unit

// Volume enumerates units of volume. The standard unit is the cubic
// metre.
type Volume uint8

const (
	// CubicMetre is the SI unit of volume.
	CubicMetre Volume = iota
	Litre
	Millilitre
	CubicFoot
	CubicInch
)

// Standard returns CubicMetre, the unit volume quantities are stored in.
func (Volume) Standard() Volume { return CubicMetre }

// Multipliers to cubic metres, indexed by unit.
var volumeFactors = [...]float64{
	CubicMetre: 1,
	Litre:      1e-3,
	Millilitre: 1e-6,
	CubicFoot:  0.3048 * 0.3048 * 0.3048,
	CubicInch:  0.0254 * 0.0254 * 0.0254,
}

// ToStandard converts a value in u to cubic metres.
func (u Volume) ToStandard(value float64) float64 { return value * volumeFactors[u] }

// FromStandard converts a value in cubic metres to u.
func (u Volume) FromStandard(value float64) float64 { return value / volumeFactors[u] }

// Abbreviation returns the short display form of u.
func (u Volume) Abbreviation() string {
	switch u {
	case CubicMetre:
		return "m^3"
	case Litre:
		return "L"
	case Millilitre:
		return "mL"
	case CubicFoot:
		return "ft^3"
	case CubicInch:
		return "in^3"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Volume) String() string { return u.Abbreviation() }

var volumeSpellings = spellingTable(map[string]Volume{
	"m^3":          CubicMetre,
	"m3":           CubicMetre,
	"m³":           CubicMetre,
	"cubic metre":  CubicMetre,
	"cubic metres": CubicMetre,
	"cubic meter":  CubicMetre,
	"cubic meters": CubicMetre,
	"L":            Litre,
	"l":            Litre,
	"litre":        Litre,
	"litres":       Litre,
	"liter":        Litre,
	"liters":       Litre,
	"mL":           Millilitre,
	"ml":           Millilitre,
	"millilitre":   Millilitre,
	"milliliter":   Millilitre,
	"cc":           Millilitre,
	"ft^3":         CubicFoot,
	"ft3":          CubicFoot,
	"cubic foot":   CubicFoot,
	"cubic feet":   CubicFoot,
	"in^3":         CubicInch,
	"in3":          CubicInch,
	"cubic inch":   CubicInch,
	"cubic inches": CubicInch,
})

// ParseVolume maps a free-form spelling such as "L" or "cubic feet" to a
// Volume unit.
func ParseVolume(spelling string) (Volume, error) {
	return parse(volumeSpellings, spelling, "volume")
}
