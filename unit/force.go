package unit

// Force enumerates units of force. The standard unit is the newton.
type Force uint8

const (
	// Newton is the SI unit of force.
	Newton Force = iota
	Kilonewton
	Micronewton
	PoundForce
)

// Standard returns Newton, the unit force quantities are stored in.
func (Force) Standard() Force { return Newton }

// Multipliers to newtons, indexed by unit.
var forceFactors = [...]float64{
	Newton:      1,
	Kilonewton:  1e3,
	Micronewton: 1e-6,
	PoundForce:  4.4482216152605,
}

// ToStandard converts a value in u to newtons.
func (u Force) ToStandard(value float64) float64 { return value * forceFactors[u] }

// FromStandard converts a value in newtons to u.
func (u Force) FromStandard(value float64) float64 { return value / forceFactors[u] }

// Abbreviation returns the short display form of u.
func (u Force) Abbreviation() string {
	switch u {
	case Newton:
		return "N"
	case Kilonewton:
		return "kN"
	case Micronewton:
		return "μN"
	case PoundForce:
		return "lbf"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Force) String() string { return u.Abbreviation() }

var forceSpellings = spellingTable(map[string]Force{
	"N":            Newton,
	"newton":       Newton,
	"newtons":      Newton,
	"kN":           Kilonewton,
	"kilonewton":   Kilonewton,
	"kilonewtons":  Kilonewton,
	"μN":           Micronewton,
	"uN":           Micronewton,
	"micronewton":  Micronewton,
	"micronewtons": Micronewton,
	"lbf":          PoundForce,
	"pound-force":  PoundForce,
})

// ParseForce maps a free-form spelling such as "N" or "lbf" to a Force
// unit.
func ParseForce(spelling string) (Force, error) {
	return parse(forceSpellings, spelling, "force")
}
