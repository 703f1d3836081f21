package quant

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// floatBitSize reports the width of the numeric type parameter, so that
// float32 values format at float32 precision.
func floatBitSize[T constraints.Float]() int {
	var t T
	if _, ok := any(t).(float32); ok {
		return 32
	}
	return 64
}

// formatNumber renders a value as the shortest decimal string that
// round-trips, with a guaranteed fractional part: 1 renders as "1.0",
// 0.5 as "0.5". NaN and infinities render as strconv prints them.
func formatNumber[T constraints.Float](value T) string {
	s := strconv.FormatFloat(float64(value), 'f', -1, floatBitSize[T]())
	if !strings.Contains(s, ".") && !strings.ContainsAny(s, "NI") {
		s += ".0"
	}
	return s
}

// formatNumberPrecision renders a value with a fixed number of decimal
// digits.
func formatNumberPrecision[T constraints.Float](value T, digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(float64(value), 'f', digits, floatBitSize[T]())
}

func jsonString(number, abbreviation string) string {
	return `{"value":` + number + `,"unit":"` + abbreviation + `"}`
}

func xmlString(number, abbreviation string) string {
	return "<value>" + number + "</value><unit>" + abbreviation + "</unit>"
}

func yamlString(number, abbreviation string) string {
	return "{value:" + number + `,unit:"` + abbreviation + `"}`
}
