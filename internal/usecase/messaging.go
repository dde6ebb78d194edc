package usecase

import (
	"context"
	"log/slog"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/message"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessagingUseCase interface {
	ListMessages(ctx context.Context, actor user.Principal, bookingID uuid.UUID) ([]*message.Message, error)
	Send(ctx context.Context, actor user.Principal, bookingID uuid.UUID, text string) (*SendResult, error)
	MarkRead(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*ReadResult, error)
	UnreadCount(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (int, error)
	Open(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*OpenResult, error)
	CanSubscribe(ctx context.Context, actor user.Principal, bookingID uuid.UUID) error
}

type messagingUseCaseImpl struct {
	bookings    shared.BookingRepository
	messages    shared.MessageRepository
	broadcaster shared.Broadcaster
	clock       clock.Clock
	logger      *slog.Logger
}

func NewMessagingUseCase(
	bookings shared.BookingRepository,
	messages shared.MessageRepository,
	broadcaster shared.Broadcaster,
	clk clock.Clock,
	logger *slog.Logger,
) MessagingUseCase {
	return &messagingUseCaseImpl{
		bookings:    bookings,
		messages:    messages,
		broadcaster: broadcaster,
		clock:       clk,
		logger:      logger,
	}
}

func (uc *messagingUseCaseImpl) participantBooking(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapBookingErr(err, bookingID)
	}
	if !b.IsParticipant(actor) {
		return nil, errs.Wrapf(ErrForbidden, "%s is not in the chat of booking %s", actor.Email, bookingID)
	}
	return b, nil
}

func (uc *messagingUseCaseImpl) thread(ctx context.Context, bookingID uuid.UUID) (*message.Thread, error) {
	stored, err := uc.messages.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to list messages of booking %s", bookingID)
	}
	return message.NewThread(bookingID, stored), nil
}

func (uc *messagingUseCaseImpl) ListMessages(ctx context.Context, actor user.Principal, bookingID uuid.UUID) ([]*message.Message, error) {
	if _, err := uc.participantBooking(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	t, err := uc.thread(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return t.Messages(), nil
}

// Send appends optimistically, persists, then confirms the entry or rolls
// it back.
func (uc *messagingUseCaseImpl) Send(ctx context.Context, actor user.Principal, bookingID uuid.UUID, text string) (*SendResult, error) {
	msg, err := message.NewMessage(bookingID, actor, text, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	b, err := uc.participantBooking(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status() == booking.StatusCancelled {
		return nil, errs.Wrapf(message.ErrThreadClosed, "booking %s", bookingID)
	}

	t, err := uc.thread(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	t.AppendPending(msg)

	id, err := uc.messages.Create(ctx, msg)
	if err != nil {
		if rbErr := t.Rollback(msg.ID()); rbErr != nil {
			uc.logger.Warn("failed to roll back pending message", "message_id", msg.ID(), "error", rbErr)
		}
		return nil, errs.Wrap(err, "failed to persist message")
	}

	stored, err := uc.messages.GetByID(ctx, id)
	if err != nil {
		_ = t.Rollback(msg.ID())
		return nil, errs.Wrap(err, "failed to refetch message")
	}
	if err := t.Confirm(msg.ID(), stored); err != nil {
		return nil, err
	}

	uc.broadcaster.Broadcast(bookingID, shared.RealtimeEvent{
		Type:      shared.RealtimeNewMessage,
		BookingID: bookingID,
		Payload:   stored,
	})
	return &SendResult{InsertedID: id, Message: stored, Thread: t}, nil
}

// MarkRead marks the currently listed messages as read for the actor and
// recounts from a fresh read.
func (uc *messagingUseCaseImpl) MarkRead(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*ReadResult, error) {
	if _, err := uc.participantBooking(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	t, err := uc.thread(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return uc.markRead(ctx, actor, t)
}

func (uc *messagingUseCaseImpl) markRead(ctx context.Context, actor user.Principal, t *message.Thread) (*ReadResult, error) {
	var ids []uuid.UUID
	for _, m := range t.Messages() {
		if m.IsUnreadFor(actor.Email) {
			ids = append(ids, m.ID())
		}
	}

	var modified int64
	if len(ids) > 0 {
		n, err := uc.messages.MarkRead(ctx, t.BookingID(), actor.Email, ids)
		if err != nil {
			return nil, errs.Wrap(err, "failed to mark messages read")
		}
		modified = n
	}

	unread, err := uc.recount(ctx, actor, t.BookingID())
	if err != nil {
		return nil, err
	}
	if modified > 0 {
		uc.broadcaster.Broadcast(t.BookingID(), shared.RealtimeEvent{
			Type:      shared.RealtimeRead,
			BookingID: t.BookingID(),
			Payload:   map[string]string{"reader": user.NormalizeEmail(actor.Email)},
		})
	}
	return &ReadResult{ModifiedCount: modified, UnreadCount: unread}, nil
}

func (uc *messagingUseCaseImpl) UnreadCount(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (int, error) {
	if _, err := uc.participantBooking(ctx, actor, bookingID); err != nil {
		return 0, err
	}
	return uc.recount(ctx, actor, bookingID)
}

// recount reads the thread again without the participant check.
func (uc *messagingUseCaseImpl) recount(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (int, error) {
	t, err := uc.thread(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	return t.UnreadCount(actor.Email), nil
}

// Open marks the listed thread read before recounting.
func (uc *messagingUseCaseImpl) Open(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*OpenResult, error) {
	if _, err := uc.participantBooking(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	t, err := uc.thread(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	read, err := uc.markRead(ctx, actor, t)
	if err != nil {
		return nil, err
	}
	t.MarkRead(actor.Email)
	return &OpenResult{Thread: t, UnreadCount: read.UnreadCount}, nil
}

func (uc *messagingUseCaseImpl) CanSubscribe(ctx context.Context, actor user.Principal, bookingID uuid.UUID) error {
	_, err := uc.participantBooking(ctx, actor, bookingID)
	return err
}
