//go:build unit || e2e

// Package dbtest seeds and resets the Postgres schema used by the e2e suites.
package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every account created by CreateTestUser.
const DefaultPassword = "password123"

// Conn is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var defaultHash = sync.OnceValues(func() (string, error) {
	return password.HashWithCost(DefaultPassword, bcrypt.MinCost)
})

func passwordHash(t *testing.T) string {
	t.Helper()
	h, err := defaultHash()
	require.NoError(t, err, "failed to hash default password")
	return h
}

func CreateTestUser(t *testing.T, db Conn, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO admin_users (id, username, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (username) DO NOTHING`,
		userID, username, username+"@villa.example.com", passwordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admin_users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db Conn, userID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE admin_users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

// CreateTestVilla inserts an active villa with complete pricing.
func CreateTestVilla(t *testing.T, db Conn, slug string, weekday, weekend, highSeason int64) uuid.UUID {
	t.Helper()

	villaID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO villas
		(id, slug, title, location, max_guests, status, weekday_price, weekend_price, high_season_price)
		VALUES ($1, $2, $3, 'Ubud, Bali', 6, 'active', $4, $5, $6)`,
		villaID, slug, "Villa "+slug, weekday, weekend, highSeason)
	require.NoError(t, err)
	return villaID
}

func CountRows(t *testing.T, db Conn, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// truncateStmt is cached after the first successful lookup.
var (
	truncateMu   sync.Mutex
	truncateStmt string
)

func truncateStatement(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	truncateMu.Lock()
	defer truncateMu.Unlock()
	if truncateStmt != "" {
		return truncateStmt, nil
	}

	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'atlas_schema_revisions'
		ORDER BY tablename`)
	if err != nil {
		return "", errs.Wrap(err, "list tables")
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", errs.Wrap(err, "scan table names")
	}
	if len(tables) == 0 {
		return "", errs.New("no application tables found; were migrations applied?")
	}
	truncateStmt = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	return truncateStmt, nil
}

// ResetDB truncates every application table, keeping the migration history.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt, err := truncateStatement(ctx, pool)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, stmt)
	return errs.Wrap(err, "truncate tables")
}
