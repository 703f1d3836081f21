package unit

import "math"

// Angle enumerates units of plane angle. The standard unit is the
// radian.
type Angle uint8

const (
	// Radian is the SI unit of plane angle.
	Radian Angle = iota
	Degree
	Revolution
	Arcminute
	Arcsecond
)

// Standard returns Radian, the unit angle quantities are stored in.
func (Angle) Standard() Angle { return Radian }

// Multipliers to radians, indexed by unit.
var angleFactors = [...]float64{
	Radian:     1,
	Degree:     math.Pi / 180,
	Revolution: 2 * math.Pi,
	Arcminute:  math.Pi / 10800,
	Arcsecond:  math.Pi / 648000,
}

// ToStandard converts a value in u to radians.
func (u Angle) ToStandard(value float64) float64 { return value * angleFactors[u] }

// FromStandard converts a value in radians to u.
func (u Angle) FromStandard(value float64) float64 { return value / angleFactors[u] }

// Abbreviation returns the short display form of u.
func (u Angle) Abbreviation() string {
	switch u {
	case Radian:
		return "rad"
	case Degree:
		return "deg"
	case Revolution:
		return "rev"
	case Arcminute:
		return "arcmin"
	case Arcsecond:
		return "arcsec"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Angle) String() string { return u.Abbreviation() }

var angleSpellings = spellingTable(map[string]Angle{
	"rad":         Radian,
	"radian":      Radian,
	"radians":     Radian,
	"deg":         Degree,
	"degree":      Degree,
	"degrees":     Degree,
	"°":           Degree,
	"rev":         Revolution,
	"revolution":  Revolution,
	"revolutions": Revolution,
	"arcmin":      Arcminute,
	"arcminute":   Arcminute,
	"arcminutes":  Arcminute,
	"'":           Arcminute,
	"arcsec":      Arcsecond,
	"arcsecond":   Arcsecond,
	"arcseconds":  Arcsecond,
	"\"":          Arcsecond,
})

// ParseAngle maps a free-form spelling such as "rad" or "°" to an Angle
// unit.
func ParseAngle(spelling string) (Angle, error) {
	return parse(angleSpellings, spelling, "angle")
}
