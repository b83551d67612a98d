package lrcalc

import (
	"math"
	"strconv"
	"strings"
)

// Render joins tokens with single spaces. Rendering the tokens of an
// expression gives the expression with runs of spaces collapsed and every
// operator set apart.
func Render(tokens []string) string {
	return strings.Join(tokens, " ")
}

// FormatResult formats a result in plain decimal notation with the fewest
// digits that represent it exactly, e.g. 3, 0.5, or 1000000000000000000000.
// Infinities are inf and -inf, and NaN is NaN.
func FormatResult(r float64) string {
	switch {
	case math.IsInf(r, 1):
		return "inf"
	case math.IsInf(r, -1):
		return "-inf"
	case math.IsNaN(r):
		return "NaN"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
