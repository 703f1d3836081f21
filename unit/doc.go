// Package unit defines the units of measure used by quant quantities.
//
// Each unit kind (Time, Length, Mass, ...) is a closed enumeration of
// interchangeable units. One member of each kind is the standard unit,
// the unit quantities of that kind are stored in; every other member
// carries a pure scale factor to and from it. The enum zero value is
// always the standard unit.
//
// Conversion between units of one kind goes through [Convert], or
// through the ToStandard/FromStandard methods on the unit values
// themselves. Converting a unit to itself is the exact identity.
//
// Free-form spellings ("s", "seconds", "1/s", "µs") resolve to unit
// values through the per-kind Parse functions. Lookup tries the exact
// spelling first and falls back to a Unicode case-folded match, so
// "Seconds" and the micro-sign and Greek-mu spellings of "μs" all
// resolve; a miss returns an error wrapping [ErrUnknownUnit].
//
// All tables in this package are initialized at package load and never
// mutated, so concurrent readers are safe.
package unit
