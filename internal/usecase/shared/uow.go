package shared

import (
	"context"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
}

// CacheInvalidator drops cached booking reads after a transaction commits.
type CacheInvalidator interface {
	InvalidateBooking(ctx context.Context, id uuid.UUID) error
}

type NopInvalidator struct{}

func (NopInvalidator) InvalidateBooking(context.Context, uuid.UUID) error { return nil }
