package unit

// Area enumerates units of area. The standard unit is the square metre.
type Area uint8

const (
	// SquareMetre is the SI unit of area.
	SquareMetre Area = iota
	SquareMillimetre
	SquareCentimetre
	SquareKilometre
	SquareInch
	SquareFoot
)

// Standard returns SquareMetre, the unit area quantities are stored in.
func (Area) Standard() Area { return SquareMetre }

// Multipliers to square metres, indexed by unit.
var areaFactors = [...]float64{
	SquareMetre:      1,
	SquareMillimetre: 1e-6,
	SquareCentimetre: 1e-4,
	SquareKilometre:  1e6,
	SquareInch:       0.0254 * 0.0254,
	SquareFoot:       0.3048 * 0.3048,
}

// ToStandard converts a value in u to square metres.
func (u Area) ToStandard(value float64) float64 { return value * areaFactors[u] }

// FromStandard converts a value in square metres to u.
func (u Area) FromStandard(value float64) float64 { return value / areaFactors[u] }

// Abbreviation returns the short display form of u.
func (u Area) Abbreviation() string {
	switch u {
	case SquareMetre:
		return "m^2"
	case SquareMillimetre:
		return "mm^2"
	case SquareCentimetre:
		return "cm^2"
	case SquareKilometre:
		return "km^2"
	case SquareInch:
		return "in^2"
	case SquareFoot:
		return "ft^2"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Area) String() string { return u.Abbreviation() }

var areaSpellings = spellingTable(map[string]Area{
	"m^2":               SquareMetre,
	"m2":                SquareMetre,
	"m²":                SquareMetre,
	"square metre":      SquareMetre,
	"square metres":     SquareMetre,
	"square meter":      SquareMetre,
	"square meters":     SquareMetre,
	"mm^2":              SquareMillimetre,
	"mm2":               SquareMillimetre,
	"mm²":               SquareMillimetre,
	"square millimetre": SquareMillimetre,
	"square millimeter": SquareMillimetre,
	"cm^2":              SquareCentimetre,
	"cm2":               SquareCentimetre,
	"cm²":               SquareCentimetre,
	"square centimetre": SquareCentimetre,
	"square centimeter": SquareCentimetre,
	"km^2":              SquareKilometre,
	"km2":               SquareKilometre,
	"km²":               SquareKilometre,
	"square kilometre":  SquareKilometre,
	"square kilometer":  SquareKilometre,
	"in^2":              SquareInch,
	"in2":               SquareInch,
	"square inch":       SquareInch,
	"square inches":     SquareInch,
	"ft^2":              SquareFoot,
	"ft2":               SquareFoot,
	"square foot":       SquareFoot,
	"square feet":       SquareFoot,
})

// ParseArea maps a free-form spelling such as "m^2" or "square feet" to
// an Area unit.
func ParseArea(spelling string) (Area, error) {
	return parse(areaSpellings, spelling, "area")
}
