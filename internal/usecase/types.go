package usecase

import (
	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/message"

	"github.com/google/uuid"
)

type BookingView struct {
	Booking     *booking.Booking
	UnreadCount int
}

type ListResult struct {
	Items     []BookingView
	Total     int64
	Page      int
	Limit     int
	PageCount int
}

type BookingDetail struct {
	Booking     *booking.Booking
	Tracking    booking.Tracking
	UnreadCount int
}

type BookResult struct {
	InsertedID uuid.UUID
	Booking    *booking.Booking
	Warnings   []string
}

type TransitionResult struct {
	ModifiedCount int64
	Booking       *booking.Booking
	Warnings      []string
}

type CancelResult struct {
	DeletedCount int64
	Warnings     []string
}

type Checkout struct {
	SessionID string
	URL       string
}

type PaymentReceipt struct {
	TransactionID string
	TrackingID    string
	Booking       *booking.Booking
	Warnings      []string
}

type SendResult struct {
	InsertedID uuid.UUID
	Message    *message.Message
	Thread     *message.Thread
}

type ReadResult struct {
	ModifiedCount int64
	UnreadCount   int
}

type OpenResult struct {
	Thread      *message.Thread
	UnreadCount int
}

// Pagination bounds for list endpoints.
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

func (p Pagination) normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	return page, limit
}
