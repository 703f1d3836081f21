package quant

import (
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"

	"github.com/unitful/quant/unit"
)

// dimensionalScalar is the shared storage for every quantity kind: one
// floating-point value, always held in the kind's standard unit.
// Conversions happen only at the boundary (construction, In, the
// formatting methods); arithmetic never re-converts.
//
// The numeric type parameter T selects the working precision
// (float32 or float64) and is threaded through every quantity type.
type dimensionalScalar[T constraints.Float, U unit.Measure[U]] struct {
	value T
}

// scalarOf wraps a value already expressed in the standard unit.
func scalarOf[T constraints.Float, U unit.Measure[U]](value T) dimensionalScalar[T, U] {
	return dimensionalScalar[T, U]{value: value}
}

// scalarIn converts a value expressed in u into the standard unit and
// wraps it.
func scalarIn[T constraints.Float, U unit.Measure[U]](value T, u U) dimensionalScalar[T, U] {
	return dimensionalScalar[T, U]{value: unit.Convert(value, u, u.Standard())}
}

// standardAbbr returns the abbreviation of the kind's standard unit.
func standardAbbr[U unit.Measure[U]]() string {
	var u U
	return u.Standard().Abbreviation()
}

// Value returns the raw value in the kind's standard unit.
func (q dimensionalScalar[T, U]) Value() T { return q.value }

// In returns the value converted to the given unit.
func (q dimensionalScalar[T, U]) In(u U) T {
	var std U
	return unit.Convert(q.value, std.Standard(), u)
}

// SetValue replaces the stored value. The new value is taken to be in
// the kind's standard unit; no conversion is applied.
func (q *dimensionalScalar[T, U]) SetValue(value T) { q.value = value }

// MutableValue returns a pointer to the stored standard-unit value.
func (q *dimensionalScalar[T, U]) MutableValue() *T { return &q.value }

// IsZero reports whether the stored value is exactly zero.
func (q dimensionalScalar[T, U]) IsZero() bool { return q.value == 0 }

// Hash returns the bit pattern of the stored value, widened to float64.
// Quantities that compare equal hash equally.
func (q dimensionalScalar[T, U]) Hash() uint64 {
	return math.Float64bits(float64(q.value))
}

// Print formats the value in the standard unit, e.g. "8.0 m/s".
func (q dimensionalScalar[T, U]) Print() string {
	return formatNumber(q.value) + " " + standardAbbr[U]()
}

// PrintIn formats the value converted to the given unit.
func (q dimensionalScalar[T, U]) PrintIn(u U) string {
	return formatNumber(q.In(u)) + " " + u.Abbreviation()
}

// PrintPrecision formats the value in the standard unit with a fixed
// number of decimal digits.
func (q dimensionalScalar[T, U]) PrintPrecision(digits int) string {
	return formatNumberPrecision(q.value, digits) + " " + standardAbbr[U]()
}

// PrintInPrecision formats the value converted to the given unit with a
// fixed number of decimal digits.
func (q dimensionalScalar[T, U]) PrintInPrecision(u U, digits int) string {
	return formatNumberPrecision(q.In(u), digits) + " " + u.Abbreviation()
}

// JSON formats the value in the standard unit as a JSON object, e.g.
// {"value":1.0,"unit":"J"}.
func (q dimensionalScalar[T, U]) JSON() string {
	return jsonString(formatNumber(q.value), standardAbbr[U]())
}

// JSONIn formats the value converted to the given unit as a JSON object.
func (q dimensionalScalar[T, U]) JSONIn(u U) string {
	return jsonString(formatNumber(q.In(u)), u.Abbreviation())
}

// JSONPrecision formats the value in the standard unit as a JSON object
// with a fixed number of decimal digits.
func (q dimensionalScalar[T, U]) JSONPrecision(digits int) string {
	return jsonString(formatNumberPrecision(q.value, digits), standardAbbr[U]())
}

// JSONInPrecision formats the value converted to the given unit as a
// JSON object with a fixed number of decimal digits.
func (q dimensionalScalar[T, U]) JSONInPrecision(u U, digits int) string {
	return jsonString(formatNumberPrecision(q.In(u), digits), u.Abbreviation())
}

// XML formats the value in the standard unit as an XML fragment, e.g.
// <value>1.0</value><unit>J</unit>.
func (q dimensionalScalar[T, U]) XML() string {
	return xmlString(formatNumber(q.value), standardAbbr[U]())
}

// XMLIn formats the value converted to the given unit as an XML
// fragment.
func (q dimensionalScalar[T, U]) XMLIn(u U) string {
	return xmlString(formatNumber(q.In(u)), u.Abbreviation())
}

// XMLPrecision formats the value in the standard unit as an XML fragment
// with a fixed number of decimal digits.
func (q dimensionalScalar[T, U]) XMLPrecision(digits int) string {
	return xmlString(formatNumberPrecision(q.value, digits), standardAbbr[U]())
}

// XMLInPrecision formats the value converted to the given unit as an XML
// fragment with a fixed number of decimal digits.
func (q dimensionalScalar[T, U]) XMLInPrecision(u U, digits int) string {
	return xmlString(formatNumberPrecision(q.In(u), digits), u.Abbreviation())
}

// YAML formats the value in the standard unit as an inline YAML mapping,
// e.g. {value:1.0,unit:"J"}.
func (q dimensionalScalar[T, U]) YAML() string {
	return yamlString(formatNumber(q.value), standardAbbr[U]())
}

// YAMLIn formats the value converted to the given unit as an inline YAML
// mapping.
func (q dimensionalScalar[T, U]) YAMLIn(u U) string {
	return yamlString(formatNumber(q.In(u)), u.Abbreviation())
}

// YAMLPrecision formats the value in the standard unit as an inline YAML
// mapping with a fixed number of decimal digits.
func (q dimensionalScalar[T, U]) YAMLPrecision(digits int) string {
	return yamlString(formatNumberPrecision(q.value, digits), standardAbbr[U]())
}

// YAMLInPrecision formats the value converted to the given unit as an
// inline YAML mapping with a fixed number of decimal digits.
func (q dimensionalScalar[T, U]) YAMLInPrecision(u U, digits int) string {
	return yamlString(formatNumberPrecision(q.In(u), digits), u.Abbreviation())
}

// String implements fmt.Stringer and is equivalent to Print.
func (q dimensionalScalar[T, U]) String() string { return q.Print() }

// SI formats the value with an SI magnitude prefix folded into the
// standard abbreviation, e.g. "2.5 kJ" for 2500 joules.
func (q dimensionalScalar[T, U]) SI(decimals int) string {
	return humanize.SIWithDigits(float64(q.value), decimals, standardAbbr[U]())
}

// dimensionlessScalar backs quantities that are bare ratios (Strain).
// It stores and formats a plain number with no unit attached.
type dimensionlessScalar[T constraints.Float] struct {
	value T
}

// Value returns the raw value.
func (q dimensionlessScalar[T]) Value() T { return q.value }

// SetValue replaces the stored value.
func (q *dimensionlessScalar[T]) SetValue(value T) { q.value = value }

// MutableValue returns a pointer to the stored value.
func (q *dimensionlessScalar[T]) MutableValue() *T { return &q.value }

// IsZero reports whether the stored value is exactly zero.
func (q dimensionlessScalar[T]) IsZero() bool { return q.value == 0 }

// Hash returns the bit pattern of the stored value, widened to float64.
func (q dimensionlessScalar[T]) Hash() uint64 {
	return math.Float64bits(float64(q.value))
}

// Print formats the bare value.
func (q dimensionlessScalar[T]) Print() string { return formatNumber(q.value) }

// PrintPrecision formats the bare value with a fixed number of decimal
// digits.
func (q dimensionlessScalar[T]) PrintPrecision(digits int) string {
	return formatNumberPrecision(q.value, digits)
}

// JSON formats the bare value; a dimensionless quantity serializes as
// its number alone.
func (q dimensionlessScalar[T]) JSON() string { return formatNumber(q.value) }

// XML formats the bare value.
func (q dimensionlessScalar[T]) XML() string { return formatNumber(q.value) }

// YAML formats the bare value.
func (q dimensionlessScalar[T]) YAML() string { return formatNumber(q.value) }

// String implements fmt.Stringer and is equivalent to Print.
func (q dimensionlessScalar[T]) String() string { return q.Print() }
