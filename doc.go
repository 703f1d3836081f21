// Package quant provides unit-safe representations of physical
// quantities.
//
// # Overview
//
// Each physical concept (Time, Speed, Energy, ...) is its own type, so
// dimensional mistakes are compile errors: a Speed cannot be added to a
// Mass because no such method exists. Every quantity stores one
// floating-point value in its kind's standard unit (SI); conversions
// happen only at the boundary, when a quantity is built from or read in
// a non-standard unit.
//
// # Quick Start
//
//	import (
//		"github.com/unitful/quant"
//		"github.com/unitful/quant/unit"
//	)
//
//	length := quant.NewLength(120.0, unit.Kilometre)
//	elapsed := quant.NewTime(1.5, unit.Hour)
//
//	speed := quant.SpeedFrom(length, elapsed)
//	fmt.Println(speed.In(unit.KilometrePerHour)) // 80
//
// # Numeric Precision
//
// Every quantity type takes a floating-point type parameter, so the same
// algebra runs in float32 or float64:
//
//	e32 := quant.NewEnergy[float32](1.0, unit.Joule)
//	e64 := quant.NewEnergy[float64](1.0, unit.Joule)
//
// Constructors infer float64 from untyped constants, which keeps the
// common case free of brackets.
//
// # Physical Relationships
//
// Quantities combine through relational constructors and operator
// methods, one per physical identity:
//
//	a := speed.DivTime(elapsed)          // Acceleration = Speed / Time
//	f := quant.NewFrequency(0.5, unit.Hertz)
//	t := f.Period()                      // Time = 1 / Frequency
//
// Same-kind arithmetic (Add, Sub, scalar Mul/Div) acts on the stored
// standard-unit values directly and never re-converts.
//
// # Serialization
//
// Print, JSON, XML and YAML render a value with its unit abbreviation;
// each has variants taking an explicit unit and/or decimal precision:
//
//	quant.NewEnergy(1.0, unit.Joule).JSON() // {"value":1.0,"unit":"J"}
//
// # Architecture
//
// The library is organized into:
//   - Public API: one value type per quantity kind plus Dimensions
//   - unit: unit enums, conversion factors, spelling tables, parsing
//
// All quantity types are plain immutable-after-construction values;
// there is no shared state beyond the read-only tables in unit.
package quant
