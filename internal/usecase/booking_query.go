package usecase

import (
	"context"
	"log/slog"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingQueryUseCase serves single-booking reads for any participant.
type BookingQueryUseCase interface {
	Get(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*BookingDetail, error)
	Tracking(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (booking.Tracking, error)
}

type bookingQueryUseCaseImpl struct {
	*bookingCore
}

func NewBookingQueryUseCase(
	bookings shared.BookingRepository,
	messages shared.MessageRepository,
	clk clock.Clock,
	logger *slog.Logger,
) BookingQueryUseCase {
	return &bookingQueryUseCaseImpl{
		bookingCore: &bookingCore{
			bookings: bookings,
			messages: messages,
			clock:    clk,
			logger:   logger,
		},
	}
}

func (uc *bookingQueryUseCaseImpl) Get(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*BookingDetail, error) {
	b, err := uc.visible(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	counts, err := uc.messages.UnreadCounts(ctx, []uuid.UUID{bookingID}, actor.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count unread messages")
	}
	return &BookingDetail{Booking: b, Tracking: b.Tracking(), UnreadCount: counts[bookingID]}, nil
}

func (uc *bookingQueryUseCaseImpl) Tracking(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (booking.Tracking, error) {
	b, err := uc.visible(ctx, actor, bookingID)
	if err != nil {
		return booking.Tracking{}, err
	}
	return b.Tracking(), nil
}

func (uc *bookingQueryUseCaseImpl) visible(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := uc.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParticipant(actor) {
		return nil, errs.Wrapf(ErrForbidden, "%s is not a participant of booking %s", actor.Email, bookingID)
	}
	return b, nil
}
