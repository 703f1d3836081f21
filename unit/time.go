package unit

// Time enumerates units of time duration. The standard unit is the
// second.
type Time uint8

const (
	// Second is the SI base unit of time.
	Second Time = iota
	Millisecond
	Microsecond
	Nanosecond
	Minute
	Hour
)

// Standard returns Second, the unit time quantities are stored in.
func (Time) Standard() Time { return Second }

// Multipliers to seconds, indexed by unit.
var timeFactors = [...]float64{
	Second:      1,
	Millisecond: 1e-3,
	Microsecond: 1e-6,
	Nanosecond:  1e-9,
	Minute:      60,
	Hour:        3600,
}

// ToStandard converts a value in u to seconds.
func (u Time) ToStandard(value float64) float64 { return value * timeFactors[u] }

// FromStandard converts a value in seconds to u.
func (u Time) FromStandard(value float64) float64 { return value / timeFactors[u] }

// Abbreviation returns the short display form of u.
func (u Time) Abbreviation() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "μs"
	case Nanosecond:
		return "ns"
	case Minute:
		return "min"
	case Hour:
		return "hr"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u Time) String() string { return u.Abbreviation() }

var timeSpellings = spellingTable(map[string]Time{
	"s":            Second,
	"sec":          Second,
	"secs":         Second,
	"second":       Second,
	"seconds":      Second,
	"ms":           Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"μs":           Microsecond,
	"us":           Microsecond,
	"microsecond":  Microsecond,
	"microseconds": Microsecond,
	"ns":           Nanosecond,
	"nanosecond":   Nanosecond,
	"nanoseconds":  Nanosecond,
	"min":          Minute,
	"mins":         Minute,
	"minute":       Minute,
	"minutes":      Minute,
	"hr":           Hour,
	"hrs":          Hour,
	"hour":         Hour,
	"hours":        Hour,
})

// ParseTime maps a free-form spelling such as "s" or "seconds" to a Time
// unit.
func ParseTime(spelling string) (Time, error) {
	return parse(timeSpellings, spelling, "time")
}
