// Package renderer turns finbook reports into markdown strings, ready to be
// printed raw or through a terminal renderer.
package renderer

import (
	"fmt"

	"github.com/etnz/finbook"
)

// perf formats a percentage with an explicit sign, the way period returns are
// usually read.
func perf(p finbook.Percent) string {
	return fmt.Sprintf("%+.1f%%", float64(p))
}

// rangeLabel names a range: its period identifier when it is a standard
// period, the explicit bounds otherwise. The zero range means "all time".
func rangeLabel(r finbook.Range) string {
	if r.IsZero() {
		return "All Time"
	}
	return r.Identifier()
}
