package unit

import "golang.org/x/exp/constraints"

// Measure is the constraint satisfied by every unit enumeration in this
// package. Each unit kind (Time, Length, ...) is a closed enum whose
// values all measure the same physical dimension and convert into one
// another through the kind's standard unit.
type Measure[U any] interface {
	comparable

	// Standard returns the unit quantities of this kind are stored in.
	Standard() U

	// Abbreviation returns the short display form, e.g. "kg/s".
	Abbreviation() string

	// ToStandard converts a value expressed in this unit to the
	// standard unit.
	ToStandard(value float64) float64

	// FromStandard converts a value expressed in the standard unit to
	// this unit.
	FromStandard(value float64) float64
}

// Convert re-expresses value, given in the from unit, in the to unit.
// The conversion routes through the kind's standard unit. Converting a
// unit to itself is the exact identity, with no scaling applied.
func Convert[T constraints.Float, U Measure[U]](value T, from, to U) T {
	if from == to {
		return value
	}
	return T(to.FromStandard(from.ToStandard(float64(value))))
}
