package shared

import (
	"context"
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/message"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/domain/review"
	"styledecor/internal/domain/wishlist"

	"github.com/google/uuid"
)

// BookingFilter narrows List. Empty emails mean no restriction.
type BookingFilter struct {
	OwnerEmail     string
	DecoratorEmail string
	Page           int
	Limit          int
}

func (f BookingFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type BookingPage struct {
	Items []*booking.Booking
	Total int64
}

// PageCount is ceil(total/limit); zero when limit is not positive.
func (p BookingPage) PageCount(limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((p.Total + int64(limit) - 1) / int64(limit))
}

// BookingPatch is a partial update. ExpectStatus turns it into a
// compare-and-set against the status read before the legality check.
type BookingPatch struct {
	Status         booking.Status
	DecoratorEmail string
	ExpectStatus   booking.Status
}

type BookingRepository interface {
	List(ctx context.Context, f BookingFilter) (BookingPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, d *booking.Draft) (uuid.UUID, error)
	Patch(ctx context.Context, id uuid.UUID, p BookingPatch) (int64, error)
	Remove(ctx context.Context, id uuid.UUID, expect booking.Status) (int64, error)
}

type MessageRepository interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*message.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*message.Message, error)
	Create(ctx context.Context, m *message.Message) (uuid.UUID, error)
	MarkRead(ctx context.Context, bookingID uuid.UUID, viewer string, ids []uuid.UUID) (int64, error)
	UnreadCounts(ctx context.Context, bookingIDs []uuid.UUID, viewer string) (map[uuid.UUID]int, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (uuid.UUID, error)
}

type Payment struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	SessionID     string
	TransactionID string
	TrackingID    string
	CustomerEmail string
	Amount        pricing.Money
	Currency      string
	PaidAt        time.Time
}

type PaymentRepository interface {
	Record(ctx context.Context, p *Payment) error
	FindBySession(ctx context.Context, sessionID string) (*Payment, error)
}

type WishlistRepository interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]*wishlist.Item, error)
	Create(ctx context.Context, item *wishlist.Item) (uuid.UUID, error)
	Remove(ctx context.Context, id uuid.UUID, ownerEmail string) (int64, error)
}

// BookingStats is the admin dashboard summary. Revenue is the sum of
// recorded payments.
type BookingStats struct {
	TotalBookings int64
	PaidBookings  int64
	Revenue       pricing.Money
}

type StatsRepository interface {
	BookingStats(ctx context.Context) (*BookingStats, error)
}
