package unit

// Length enumerates units of length. The standard unit is the metre.
type Length uint8

const (
	// Metre is the SI base unit of length.
	Metre Length = iota
	Millimetre
	Centimetre
	Kilometre
	Micrometre
	Nanometre
	Inch
	Foot
	Yard
	Mile
	NauticalMile
)

// Standard returns Metre, the unit length quantities are stored in.
func (Length) Standard() Length { return Metre }

// Multipliers to metres, indexed by unit.
var lengthFactors = [...]float64{
	Metre:        1,
	Millimetre:   1e-3,
	Centimetre:   1e-2,
	Kilometre:    1e3,
	Micrometre:   1e-6,
	Nanometre:    1e-9,
	Inch:         0.0254,
	Foot:         0.3048,
	Yard:         0.9144,
	Mile:         1609.344,
	NauticalMile: 1852,
}

// ToStandard converts a value in u to metres.
func (u Length) ToStandard(value float64) float64 { return value * lengthFactors[u] }

// FromStandard converts a value in metres to u.
func (u Length) FromStandard(value float64) float64 { return value / lengthFactors[u] }

// Abbreviation returns the short display form of u.
func (u Length) Abbreviation() string {
	switch u {
	case Metre:
		return "m"
	case Millimetre:
		return "mm"
	case Centimetre:
		return "cm"
	case Kilometre:
		return "km"
	case Micrometre:
		return "μm"
	case Nanometre:
		return "nm"
	case Inch:
		return "in"
	case Foot:
		return "ft"
	case Yard:
		return "yd"
	case Mile:
		return "mi"
	case NauticalMile:
		return "nmi"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Length) String() string { return u.Abbreviation() }

var lengthSpellings = spellingTable(map[string]Length{
	"m":              Metre,
	"metre":          Metre,
	"metres":         Metre,
	"meter":          Metre,
	"meters":         Metre,
	"mm":             Millimetre,
	"millimetre":     Millimetre,
	"millimetres":    Millimetre,
	"millimeter":     Millimetre,
	"millimeters":    Millimetre,
	"cm":             Centimetre,
	"centimetre":     Centimetre,
	"centimetres":    Centimetre,
	"centimeter":     Centimetre,
	"centimeters":    Centimetre,
	"km":             Kilometre,
	"kilometre":      Kilometre,
	"kilometres":     Kilometre,
	"kilometer":      Kilometre,
	"kilometers":     Kilometre,
	"μm":             Micrometre,
	"um":             Micrometre,
	"micrometre":     Micrometre,
	"micrometres":    Micrometre,
	"micrometer":     Micrometre,
	"micrometers":    Micrometre,
	"micron":         Micrometre,
	"microns":        Micrometre,
	"nm":             Nanometre,
	"nanometre":      Nanometre,
	"nanometres":     Nanometre,
	"nanometer":      Nanometre,
	"nanometers":     Nanometre,
	"in":             Inch,
	"inch":           Inch,
	"inches":         Inch,
	"ft":             Foot,
	"foot":           Foot,
	"feet":           Foot,
	"yd":             Yard,
	"yard":           Yard,
	"yards":          Yard,
	"mi":             Mile,
	"mile":           Mile,
	"miles":          Mile,
	"nmi":            NauticalMile,
	"nautical mile":  NauticalMile,
	"nautical miles": NauticalMile,
})

// ParseLength maps a free-form spelling such as "m" or "feet" to a
// Length unit.
func ParseLength(spelling string) (Length, error) {
	return parse(lengthSpellings, spelling, "length")
}
