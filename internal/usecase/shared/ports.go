package shared

import (
	"context"
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"

	"github.com/google/uuid"
)

// Notification is the template payload handed to the email collaborator.
type Notification struct {
	Template      string
	To            string
	CustomerName  string
	BookingID     uuid.UUID
	ServiceName   string
	Status        booking.Status
	DecoratorName string
}

const (
	TemplateStatusChanged     = "booking_status_changed"
	TemplateDecoratorAssigned = "booking_decorator_assigned"
)

// Notifier delivers notifications; callers treat failures as warnings.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type StatusChangedEvent struct {
	BookingID      uuid.UUID      `json:"bookingId"`
	From           booking.Status `json:"from"`
	To             booking.Status `json:"to"`
	ActorEmail     string         `json:"actorEmail,omitempty"`
	ActorRole      string         `json:"actorRole"`
	DecoratorEmail string         `json:"decoratorEmail,omitempty"`
	Override       bool           `json:"override"`
	OccurredAt     time.Time      `json:"occurredAt"`
}

const EventTypeStatusChanged = "booking.status_changed"

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, ev StatusChangedEvent) error
}

type CheckoutRequest struct {
	BookingID     uuid.UUID
	CustomerEmail string
	ServiceName   string
	Amount        pricing.Money
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaidSession is what the provider reports back for a finished checkout.
type PaidSession struct {
	ID            string
	BookingID     uuid.UUID
	Paid          bool
	TransactionID string
	Amount        pricing.Money
	Currency      string
	CustomerEmail string
}

type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*PaidSession, error)
}

const (
	RealtimeNewMessage = "new_message"
	RealtimeRead       = "read"
	RealtimeStatus     = "status"
)

type RealtimeEvent struct {
	Type      string    `json:"type"`
	BookingID uuid.UUID `json:"bookingId"`
	Payload   any       `json:"payload"`
}

// Broadcaster pushes events to live subscribers of a booking room.
type Broadcaster interface {
	Broadcast(bookingID uuid.UUID, ev RealtimeEvent)
}
