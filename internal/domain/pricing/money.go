package pricing

import (
	"errors"
	"math"
)

var ErrPriceOverflow = errors.New("price exceeds the representable range")

// AddPrice sums two non-negative amounts in rupiah.
func AddPrice(a, b int64) (int64, error) {
	if a < 0 || b < 0 || a > math.MaxInt64-b {
		return 0, ErrPriceOverflow
	}
	return a + b, nil
}

// MulPrice multiplies a non-negative amount by a non-negative factor.
func MulPrice(a, n int64) (int64, error) {
	if a < 0 || n < 0 {
		return 0, ErrPriceOverflow
	}
	if a != 0 && n > math.MaxInt64/a {
		return 0, ErrPriceOverflow
	}
	return a * n, nil
}
