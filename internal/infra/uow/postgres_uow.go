package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/infra/repository"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	retryBase       = 100 * time.Millisecond
	retryJitterPct  = 20
	retryMaxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Within runs fn once under READ COMMITTED; car rows are serialized by the
// FOR UPDATE locks that FindForUpdate and Reserve take.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinRetry reruns fn on serialization failures and deadlocks with jittered exponential backoff.
func (u *PostgresUoW) WithinRetry(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	return retryTx(ctx, retryMaxRetries, func(ctx context.Context) error {
		return u.runOnce(ctx, opts, fn)
	})
}

func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// retryTx calls attempt until it succeeds, fails for a non-retryable reason,
// or maxRetries extra attempts are used up.
func retryTx(ctx context.Context, maxRetries uint64, attempt func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(maxRetries, retry.WithJitterPercent(retryJitterPct, retry.NewExponential(retryBase)))

	tries := 0
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		tries++
		err := attempt(ctx)
		if err != nil && isRetryableError(err) {
			slog.Warn("retrying transaction", "attempt", tries, "error", err.Error())
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries", "attempts", tries, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx db.DBTX

	cars         shared.CarRepository
	reservations shared.ReservationRepository
	bookings     shared.BookingRepository
}

func (t *pgTx) Cars() shared.CarRepository {
	if t.cars == nil {
		t.cars = repository.NewCarRepository(t.dbtx)
	}
	return t.cars
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookings
}
