package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"villa-booking/internal/infra/repository"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction is replayed after losing a race
// for a villa row. Waits double from Base up to Max, with up to 20% jitter.
type RetryPolicy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
	// LockTimeout caps how long one attempt queues for a row lock.
	LockTimeout time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	Attempts:    4,
	Base:        50 * time.Millisecond,
	Max:         time.Second,
	LockTimeout: 3 * time.Second,
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, policy: DefaultRetryPolicy}
}

// Within runs fn in a ReadCommitted transaction. Booking writes serialise on the villa row
// lock taken by VillaRepository.LockForBooking, so a stronger isolation level is not needed.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	attempts := max(u.policy.Attempts, 1)
	for attempt := range attempts {
		if attempt > 0 {
			wait := u.policy.backoff(attempt - 1)
			slog.WarnContext(ctx, "Retrying transaction",
				slog.Int("attempt", attempt+1),
				slog.Duration("wait", wait),
				slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = u.attempt(ctx, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
	}

	slog.ErrorContext(ctx, "Transaction kept conflicting",
		slog.Int("attempts", attempts),
		slog.String("error", err.Error()))
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt is one transaction; the deferred rollback is a no-op after a commit.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if u.policy.LockTimeout > 0 {
		// SET does not take bind parameters; the value is a plain millisecond count.
		if _, err := pgxTx.Exec(ctx, "SET LOCAL lock_timeout = "+strconv.FormatInt(u.policy.LockTimeout.Milliseconds(), 10)); err != nil {
			return errs.Mark(err, errTransactionBegin)
		}
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// backoff returns the wait before retry n (0-based).
func (p RetryPolicy) backoff(n int) time.Duration {
	wait := p.Base << min(n, 20)
	if wait <= 0 || wait > p.Max {
		wait = p.Max
	}
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	villaRepo        shared.VillaRepository
	reservationRepo  shared.ReservationRepository
	galleryRepo      shared.GalleryRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
}

func (t *pgTx) Villas() shared.VillaRepository {
	if t.villaRepo == nil {
		t.villaRepo = repository.NewVillaRepository(t.q, t.dbtx)
	}
	return t.villaRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Gallery() shared.GalleryRepository {
	if t.galleryRepo == nil {
		t.galleryRepo = repository.NewGalleryRepository(t.q, t.dbtx)
	}
	return t.galleryRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}
