package unit

import "math"

// AngularSpeed enumerates units of angular speed. The standard unit is
// the radian per second.
type AngularSpeed uint8

const (
	// RadianPerSecond is the SI unit of angular speed.
	RadianPerSecond AngularSpeed = iota
	DegreePerSecond
	RevolutionPerSecond
	RevolutionPerMinute
)

// Standard returns RadianPerSecond, the unit angular-speed quantities
// are stored in.
func (AngularSpeed) Standard() AngularSpeed { return RadianPerSecond }

// Multipliers to radians per second, indexed by unit.
var angularSpeedFactors = [...]float64{
	RadianPerSecond:     1,
	DegreePerSecond:     math.Pi / 180,
	RevolutionPerSecond: 2 * math.Pi,
	RevolutionPerMinute: 2 * math.Pi / 60,
}

// ToStandard converts a value in u to radians per second.
func (u AngularSpeed) ToStandard(value float64) float64 { return value * angularSpeedFactors[u] }

// FromStandard converts a value in radians per second to u.
func (u AngularSpeed) FromStandard(value float64) float64 { return value / angularSpeedFactors[u] }

// Abbreviation returns the short display form of u.
func (u AngularSpeed) Abbreviation() string {
	switch u {
	case RadianPerSecond:
		return "rad/s"
	case DegreePerSecond:
		return "deg/s"
	case RevolutionPerSecond:
		return "rev/s"
	case RevolutionPerMinute:
		return "rev/min"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u AngularSpeed) String() string { return u.Abbreviation() }

var angularSpeedSpellings = spellingTable(map[string]AngularSpeed{
	"rad/s":                  RadianPerSecond,
	"radians per second":     RadianPerSecond,
	"deg/s":                  DegreePerSecond,
	"°/s":                    DegreePerSecond,
	"degrees per second":     DegreePerSecond,
	"rev/s":                  RevolutionPerSecond,
	"rps":                    RevolutionPerSecond,
	"revolutions per second": RevolutionPerSecond,
	"rev/min":                RevolutionPerMinute,
	"rpm":                    RevolutionPerMinute,
	"revolutions per minute": RevolutionPerMinute,
})

// ParseAngularSpeed maps a free-form spelling such as "rad/s" or "rpm"
// to an AngularSpeed unit.
func ParseAngularSpeed(spelling string) (AngularSpeed, error) {
	return parse(angularSpeedSpellings, spelling, "angular speed")
}
