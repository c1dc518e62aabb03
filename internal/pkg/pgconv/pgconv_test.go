//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateRoundTripDropsClockAndZone(t *testing.T) {
	makassar := time.FixedZone("WITA", 8*60*60)
	in := time.Date(2025, 9, 4, 23, 30, 0, 0, makassar)

	got := DateFromPgtype(DateToPgtype(in))

	assert.Equal(t, time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestNullableInt64(t *testing.T) {
	assert.Nil(t, Int64PtrFromPgtype(Int64PtrToPgtype(nil)))

	price := int64(2_500_000)
	got := Int64PtrFromPgtype(Int64PtrToPgtype(&price))
	if assert.NotNil(t, got) {
		assert.Equal(t, price, *got)
	}
}

func TestTimePtrFromPgtype(t *testing.T) {
	assert.Nil(t, TimePtrFromPgtype(pgtype.Timestamptz{}))

	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	got := TimePtrFromPgtype(TimeToPgtype(now))
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(errors.Wrap(sql.ErrNoRows, "find villa")))
	assert.False(t, IsNoRows(errors.New("connection refused")))
	assert.False(t, IsNoRows(nil))
}
