package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"sync"
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *pgquery.Queries
	invalidator shared.CacheInvalidator
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries, invalidator shared.CacheInvalidator) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		invalidator: invalidator,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Serialization failures and deadlocks are retried here; repository calls
// outside a unit of work are never retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx, uow: u}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				u.invalidate(ctx, tx.touched())
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) invalidate(ctx context.Context, ids []uuid.UUID) {
	for _, id := range ids {
		if err := u.invalidator.InvalidateBooking(ctx, id); err != nil {
			slog.Warn("failed to invalidate booking cache", "booking_id", id, "error", err)
		}
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgquery.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo *trackingBookings
	paymentRepo shared.PaymentRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = &trackingBookings{BookingRepository: repository.NewBookingRepository(t.uow.q, t.dbtx)}
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) touched() []uuid.UUID {
	if t.bookingRepo == nil {
		return nil
	}
	return t.bookingRepo.ids()
}

// trackingBookings remembers which bookings a transaction wrote so their
// cache entries can be dropped after commit.
type trackingBookings struct {
	*repository.BookingRepository
	mu      sync.Mutex
	written []uuid.UUID
}

func (b *trackingBookings) Patch(ctx context.Context, id uuid.UUID, p shared.BookingPatch) (int64, error) {
	b.mark(id)
	return b.BookingRepository.Patch(ctx, id, p)
}

func (b *trackingBookings) Remove(ctx context.Context, id uuid.UUID, expect booking.Status) (int64, error) {
	b.mark(id)
	return b.BookingRepository.Remove(ctx, id, expect)
}

func (b *trackingBookings) mark(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.written = append(b.written, id)
}

func (b *trackingBookings) ids() []uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]uuid.UUID(nil), b.written...)
}
