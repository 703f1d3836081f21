package unit

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownUnit is returned by the Parse functions when no unit of the
// requested kind matches the given spelling.
var ErrUnknownUnit = errors.New("unit: unknown unit spelling")

// fold normalizes a spelling for case-insensitive lookup. Unicode case
// folding also maps the micro sign U+00B5 onto Greek mu U+03BC, so both
// spellings of "μs" resolve to the same key.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// spellingTable builds a lookup table from the authored spellings. Every
// authored spelling is kept verbatim; its case-folded form is added as
// well unless two units of the kind would collide under folding (e.g.
// "mJ" and "MJ"), in which case the folded form stays unmapped and only
// the exact spellings match.
func spellingTable[U comparable](entries map[string]U) map[string]U {
	table := make(map[string]U, 2*len(entries))
	for s, u := range entries {
		table[s] = u
	}
	ambiguous := make(map[string]bool)
	for s, u := range entries {
		f := fold(s)
		if f == s || ambiguous[f] {
			continue
		}
		if existing, ok := table[f]; ok && existing != u {
			if _, authored := entries[f]; !authored {
				delete(table, f)
			}
			ambiguous[f] = true
			continue
		}
		table[f] = u
	}
	return table
}

// parse resolves a spelling against a kind's table: exact match first,
// then case-folded.
func parse[U any](table map[string]U, spelling, kind string) (U, error) {
	s := strings.TrimSpace(spelling)
	if u, ok := table[s]; ok {
		return u, nil
	}
	if u, ok := table[fold(s)]; ok {
		return u, nil
	}
	var zero U
	return zero, fmt.Errorf("%w: no %s unit is spelled %q", ErrUnknownUnit, kind, spelling)
}
