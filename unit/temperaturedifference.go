package unit

// TemperatureDifference enumerates units of temperature difference. The
// standard unit is the kelvin. Differences convert by scale alone;
// absolute temperature scales with offsets (degrees Celsius above
// freezing, say) are a different concept and are not covered here.
type TemperatureDifference uint8

const (
	// Kelvin is the SI base unit of temperature.
	Kelvin TemperatureDifference = iota
	Celsius
	Rankine
	Fahrenheit
)

// Standard returns Kelvin, the unit temperature-difference quantities
// are stored in.
func (TemperatureDifference) Standard() TemperatureDifference { return Kelvin }

// Multipliers to kelvins, indexed by unit.
var temperatureDifferenceFactors = [...]float64{
	Kelvin:     1,
	Celsius:    1,
	Rankine:    5.0 / 9.0,
	Fahrenheit: 5.0 / 9.0,
}

// ToStandard converts a value in u to kelvins.
func (u TemperatureDifference) ToStandard(value float64) float64 {
	return value * temperatureDifferenceFactors[u]
}

// FromStandard converts a value in kelvins to u.
func (u TemperatureDifference) FromStandard(value float64) float64 {
	return value / temperatureDifferenceFactors[u]
}

// Abbreviation returns the short display form of u.
func (u TemperatureDifference) Abbreviation() string {
	switch u {
	case Kelvin:
		return "K"
	case Celsius:
		return "°C"
	case Rankine:
		return "°R"
	case Fahrenheit:
		return "°F"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (u TemperatureDifference) String() string { return u.Abbreviation() }

var temperatureDifferenceSpellings = spellingTable(map[string]TemperatureDifference{
	"K":          Kelvin,
	"kelvin":     Kelvin,
	"kelvins":    Kelvin,
	"°C":         Celsius,
	"C":          Celsius,
	"celsius":    Celsius,
	"°R":         Rankine,
	"R":          Rankine,
	"rankine":    Rankine,
	"°F":         Fahrenheit,
	"F":          Fahrenheit,
	"fahrenheit": Fahrenheit,
})

// ParseTemperatureDifference maps a free-form spelling such as "K" or
// "°C" to a TemperatureDifference unit.
func ParseTemperatureDifference(spelling string) (TemperatureDifference, error) {
	return parse(temperatureDifferenceSpellings, spelling, "temperature difference")
}
