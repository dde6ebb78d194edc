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

type AdminBookingUseCase interface {
	ListAll(ctx context.Context, actor user.Principal, ownerEmail string, page, limit int) (*ListResult, error)
	AssignDecorator(ctx context.Context, actor user.Principal, bookingID uuid.UUID, decoratorEmail string) (*TransitionResult, error)
	ForceSetStatus(ctx context.Context, actor user.Principal, bookingID uuid.UUID, status booking.Status) (*TransitionResult, error)
	Stats(ctx context.Context, actor user.Principal) (*shared.BookingStats, error)
}

type adminBookingUseCaseImpl struct {
	*bookingCore
	notifier shared.Notifier
	stats    shared.StatsRepository
}

func NewAdminBookingUseCase(
	bookings shared.BookingRepository,
	messages shared.MessageRepository,
	events shared.EventPublisher,
	notifier shared.Notifier,
	stats shared.StatsRepository,
	clk clock.Clock,
	logger *slog.Logger,
	pagination Pagination,
) AdminBookingUseCase {
	return &adminBookingUseCaseImpl{
		bookingCore: &bookingCore{
			bookings:   bookings,
			messages:   messages,
			events:     events,
			clock:      clk,
			logger:     logger,
			pagination: pagination,
		},
		notifier: notifier,
		stats:    stats,
	}
}

func (uc *adminBookingUseCaseImpl) ListAll(ctx context.Context, actor user.Principal, ownerEmail string, page, limit int) (*ListResult, error) {
	if !actor.IsAdmin() {
		return nil, errs.Wrapf(ErrForbidden, "%s cannot list every booking", actor.Role)
	}
	return uc.list(ctx, actor, shared.BookingFilter{
		OwnerEmail: user.NormalizeEmail(ownerEmail),
		Page:       page,
		Limit:      limit,
	})
}

// AssignDecorator confirms a pending booking and sets its decorator in the
// same patch.
func (uc *adminBookingUseCaseImpl) AssignDecorator(ctx context.Context, actor user.Principal, bookingID uuid.UUID, decoratorEmail string) (*TransitionResult, error) {
	email, err := user.NewEmail(decoratorEmail)
	if err != nil {
		return nil, errs.Wrapf(booking.ErrValidation, "decorator email %q: %v", decoratorEmail, err)
	}

	result, err := uc.transition(ctx, actor, bookingID, transitionInput{
		Op:             "assign decorator",
		Next:           booking.StatusConfirmed,
		DecoratorEmail: email.Value(),
	})
	if err != nil {
		return result, err
	}
	if err := notifyStatus(ctx, uc.notifier, uc.logger, result.Booking, booking.StatusConfirmed, shared.TemplateDecoratorAssigned); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("customer not notified: %v", err))
	}
	return result, nil
}

// ForceSetStatus is the operational override. It still goes through the
// transition table as admin and is published as an audit event.
func (uc *adminBookingUseCaseImpl) ForceSetStatus(ctx context.Context, actor user.Principal, bookingID uuid.UUID, status booking.Status) (*TransitionResult, error) {
	uc.logger.Warn("admin status override requested",
		"booking_id", bookingID,
		"admin", actor.Email,
		"to", status)

	result, err := uc.transition(ctx, actor, bookingID, transitionInput{
		Op:       "force status",
		Next:     status,
		Override: true,
	})
	if err != nil {
		return result, err
	}
	if err := notifyStatus(ctx, uc.notifier, uc.logger, result.Booking, status, shared.TemplateStatusChanged); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("customer not notified: %v", err))
	}
	return result, nil
}

func (uc *adminBookingUseCaseImpl) Stats(ctx context.Context, actor user.Principal) (*shared.BookingStats, error) {
	if !actor.IsAdmin() {
		return nil, errs.Wrapf(ErrForbidden, "%s cannot read booking stats", actor.Role)
	}
	return uc.stats.BookingStats(ctx)
}
