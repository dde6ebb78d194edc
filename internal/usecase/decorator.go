package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

type DecoratorBookingUseCase interface {
	ListAssigned(ctx context.Context, actor user.Principal, page, limit int) (*ListResult, error)
	AdvanceStatus(ctx context.Context, actor user.Principal, bookingID uuid.UUID, next booking.Status) (*TransitionResult, error)
	NotifyCustomer(ctx context.Context, b *booking.Booking, next booking.Status) error
}

type decoratorBookingUseCaseImpl struct {
	*bookingCore
	notifier shared.Notifier
}

func NewDecoratorBookingUseCase(
	bookings shared.BookingRepository,
	messages shared.MessageRepository,
	events shared.EventPublisher,
	notifier shared.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
	pagination Pagination,
) DecoratorBookingUseCase {
	return &decoratorBookingUseCaseImpl{
		bookingCore: &bookingCore{
			bookings:   bookings,
			messages:   messages,
			events:     events,
			clock:      clk,
			logger:     logger,
			pagination: pagination,
		},
		notifier: notifier,
	}
}

func (uc *decoratorBookingUseCaseImpl) ListAssigned(ctx context.Context, actor user.Principal, page, limit int) (*ListResult, error) {
	if !actor.IsDecorator() {
		return nil, errs.Wrapf(ErrForbidden, "%s has no assigned projects", actor.Role)
	}
	return uc.list(ctx, actor, shared.BookingFilter{DecoratorEmail: actor.Email, Page: page, Limit: limit})
}

// AdvanceStatus moves an assigned project one rung up. The customer is
// notified afterwards; a notification failure never undoes the status.
func (uc *decoratorBookingUseCaseImpl) AdvanceStatus(ctx context.Context, actor user.Principal, bookingID uuid.UUID, next booking.Status) (*TransitionResult, error) {
	result, err := uc.transition(ctx, actor, bookingID, transitionInput{Op: "advance status", Next: next})
	if err != nil {
		return result, err
	}
	if err := uc.NotifyCustomer(ctx, result.Booking, next); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("customer not notified: %v", err))
	}
	return result, nil
}

func (uc *decoratorBookingUseCaseImpl) NotifyCustomer(ctx context.Context, b *booking.Booking, next booking.Status) error {
	return notifyStatus(ctx, uc.notifier, uc.logger, b, next, shared.TemplateStatusChanged)
}

func notifyStatus(ctx context.Context, notifier shared.Notifier, logger *slog.Logger, b *booking.Booking, next booking.Status, template string) error {
	if b == nil {
		return nil
	}
	err := notifier.Notify(ctx, shared.Notification{
		Template:     template,
		To:           b.CustomerEmail(),
		CustomerName: b.CustomerName(),
		BookingID:    b.ID(),
		ServiceName:  b.Service().Name,
		Status:       next,
	})
	if err != nil {
		logger.Warn("customer notification failed",
			"booking_id", b.ID(),
			"status", next,
			"error", err)
	}
	return err
}
