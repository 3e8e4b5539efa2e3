// Package fixed holds the integer weight encoding used across pathion.
//
// Route distances arrive as decimals with one fractional digit. Keeping them
// as float64 inside the search engine would break the total order the
// priority queue and the relaxation test rely on, so every distance is
// encoded once at the boundary as integer tenths and only decoded again for
// display.
package fixed

import (
	"errors"
	"fmt"
	"math"
)

// Weight is a non-negative distance in fixed-point tenths.
type Weight int64

// ErrInvalidWeight reports a distance that cannot be encoded: negative,
// NaN or infinite.
var ErrInvalidWeight = errors.New("fixed: invalid weight")

// Encode converts a decimal distance to tenths, rounding half away from
// zero (the same rounding the route files were produced with).
func Encode(d float64) (Weight, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, d)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %v is negative", ErrInvalidWeight, d)
	}
	return Weight(math.Round(d * 10)), nil
}

// Decode converts a weight back to its decimal value. Display only; the
// engine never does arithmetic on the decoded form.
func Decode(w Weight) float64 {
	return float64(w) / 10
}

// String renders the weight with one fractional digit, e.g. 15 -> "1.5".
func (w Weight) String() string {
	return fmt.Sprintf("%.1f", Decode(w))
}
