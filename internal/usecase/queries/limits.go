package queries

import (
	"math"

	"villa-booking/internal/pkg/errs"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	// MaxRowOffset matches the int4 OFFSET the list queries bind.
	MaxRowOffset = math.MaxInt32
)

var ErrPageOutOfRange = errs.New("page is out of range")

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidatePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// RowOffset turns a validated page and limit into a row offset.
func RowOffset(page, limit int) (int, error) {
	if page < 1 || limit < 1 {
		return 0, ErrPageOutOfRange
	}
	if page-1 > MaxRowOffset/limit {
		return 0, ErrPageOutOfRange
	}
	return (page - 1) * limit, nil
}
