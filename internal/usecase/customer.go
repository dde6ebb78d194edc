package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/review"
	"styledecor/internal/domain/user"
	"styledecor/internal/infra"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBookingUseCase interface {
	Book(ctx context.Context, actor user.Principal, service booking.ServiceSnapshot, sel booking.Selections) (*BookResult, error)
	Cancel(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*CancelResult, error)
	Pay(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*Checkout, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*PaymentReceipt, error)
	Review(ctx context.Context, actor user.Principal, bookingID uuid.UUID, rating int, comment string) (uuid.UUID, error)
	ListMine(ctx context.Context, actor user.Principal, page, limit int) (*ListResult, error)
}

type customerBookingUseCaseImpl struct {
	*bookingCore
	reviews  shared.ReviewRepository
	payments shared.PaymentRepository
	gateway  shared.PaymentGateway
	uow      shared.UnitOfWork
	coupons  booking.CouponLookup
}

func NewCustomerBookingUseCase(
	bookings shared.BookingRepository,
	messages shared.MessageRepository,
	reviews shared.ReviewRepository,
	payments shared.PaymentRepository,
	gateway shared.PaymentGateway,
	uow shared.UnitOfWork,
	events shared.EventPublisher,
	coupons booking.CouponLookup,
	clk clock.Clock,
	logger *slog.Logger,
	pagination Pagination,
) CustomerBookingUseCase {
	return &customerBookingUseCaseImpl{
		bookingCore: &bookingCore{
			bookings:   bookings,
			messages:   messages,
			events:     events,
			clock:      clk,
			logger:     logger,
			pagination: pagination,
		},
		reviews:  reviews,
		payments: payments,
		gateway:  gateway,
		uow:      uow,
		coupons:  coupons,
	}
}

func (uc *customerBookingUseCaseImpl) Book(ctx context.Context, actor user.Principal, service booking.ServiceSnapshot, sel booking.Selections) (*BookResult, error) {
	if !actor.IsCustomer() {
		return nil, errs.Wrapf(ErrForbidden, "%s cannot book services", actor.Role)
	}

	services := &booking.Services{Clock: uc.clock, Coupons: uc.coupons}
	draft, err := booking.NewDraft(services, actor, service, sel)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if draft.CouponErr != nil {
		warnings = append(warnings, draft.CouponErr.Error())
	}

	id, err := uc.bookings.Create(ctx, draft)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create booking")
	}

	created, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BookResult{InsertedID: id, Booking: created, Warnings: warnings}, nil
}

func (uc *customerBookingUseCaseImpl) Cancel(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*CancelResult, error) {
	current, err := uc.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	from := current.Status()
	if err := booking.CheckTransition(from, booking.StatusCancelled, actor, current, ""); err != nil {
		return nil, err
	}

	deleted, err := uc.bookings.Remove(ctx, bookingID, from)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to remove booking %s", bookingID)
	}
	if deleted == 0 {
		fresh, err := uc.refetch(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		return &CancelResult{}, &NoOpWriteWarning{Op: "cancel", BookingID: bookingID, Current: fresh}
	}

	result := &CancelResult{DeletedCount: deleted}
	if w := uc.publish(ctx, shared.StatusChangedEvent{
		BookingID:  bookingID,
		From:       from,
		To:         booking.StatusCancelled,
		ActorEmail: actor.Email,
		ActorRole:  actor.Role.String(),
		OccurredAt: uc.clock.Now(),
	}); w != "" {
		result.Warnings = append(result.Warnings, w)
	}
	return result, nil
}

func (uc *customerBookingUseCaseImpl) Pay(ctx context.Context, actor user.Principal, bookingID uuid.UUID) (*Checkout, error) {
	b, err := uc.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsOwnedBy(actor) {
		return nil, errs.Wrapf(ErrForbidden, "booking %s belongs to another customer", bookingID)
	}
	if b.Status() != booking.StatusCompleted {
		return nil, errs.Wrapf(ErrNotPayable, "booking %s is %s", bookingID, b.Status())
	}

	session, err := uc.gateway.CreateCheckout(ctx, shared.CheckoutRequest{
		BookingID:     b.ID(),
		CustomerEmail: b.CustomerEmail(),
		ServiceName:   b.Service().Name,
		Amount:        b.Price(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}
	return &Checkout{SessionID: session.ID, URL: session.URL}, nil
}

// ConfirmPayment is the payment callback. Replaying a session id returns
// the receipt recorded the first time.
func (uc *customerBookingUseCaseImpl) ConfirmPayment(ctx context.Context, sessionID string) (*PaymentReceipt, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errs.Wrap(ErrPaymentNotConfirmed, "session id is required")
	}

	existing, err := uc.payments.FindBySession(ctx, sessionID)
	if err == nil {
		b, err := uc.refetch(ctx, existing.BookingID)
		if err != nil {
			return nil, err
		}
		return &PaymentReceipt{TransactionID: existing.TransactionID, TrackingID: existing.TrackingID, Booking: b}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Wrap(err, "failed to look up payment")
	}

	session, err := uc.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to verify checkout session")
	}
	if !session.Paid {
		return nil, errs.Wrapf(ErrPaymentNotConfirmed, "session %s", sessionID)
	}

	current, err := uc.load(ctx, session.BookingID)
	if err != nil {
		return nil, err
	}
	callback := user.PaymentCallback()
	if err := booking.CheckTransition(current.Status(), booking.StatusPaid, callback, current, ""); err != nil {
		return nil, err
	}

	payment := &shared.Payment{
		ID:            uuid.New(),
		BookingID:     current.ID(),
		SessionID:     session.ID,
		TransactionID: session.TransactionID,
		TrackingID:    newTrackingID(uc.clock),
		CustomerEmail: current.CustomerEmail(),
		Amount:        session.Amount,
		Currency:      session.Currency,
		PaidAt:        uc.clock.Now(),
	}

	var modified int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().Record(ctx, payment); err != nil {
			return err
		}
		n, err := tx.Bookings().Patch(ctx, current.ID(), shared.BookingPatch{
			Status:       booking.StatusPaid,
			ExpectStatus: booking.StatusCompleted,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return errPaymentRaceLost
		}
		modified = n
		return nil
	})
	if err != nil && !errs.Is(err, errPaymentRaceLost) {
		return nil, errs.Wrap(err, "failed to record payment")
	}

	fresh, rerr := uc.refetch(ctx, current.ID())
	if rerr != nil {
		return nil, rerr
	}
	if modified == 0 {
		return nil, &NoOpWriteWarning{Op: "confirm payment", BookingID: current.ID(), Current: fresh}
	}

	receipt := &PaymentReceipt{TransactionID: payment.TransactionID, TrackingID: payment.TrackingID, Booking: fresh}
	if w := uc.publish(ctx, shared.StatusChangedEvent{
		BookingID:  current.ID(),
		From:       booking.StatusCompleted,
		To:         booking.StatusPaid,
		ActorRole:  callback.Role.String(),
		OccurredAt: uc.clock.Now(),
	}); w != "" {
		receipt.Warnings = append(receipt.Warnings, w)
	}
	return receipt, nil
}

var errPaymentRaceLost = errs.New("booking left completed before payment was recorded")

func newTrackingID(clk clock.Clock) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("SD-%s-%s", clk.Now().Format("20060102"), id[:10])
}

func (uc *customerBookingUseCaseImpl) Review(ctx context.Context, actor user.Principal, bookingID uuid.UUID, rating int, comment string) (uuid.UUID, error) {
	b, err := uc.load(ctx, bookingID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := review.CheckEligibility(b, actor); err != nil {
		return uuid.Nil, err
	}

	rev, err := review.NewReview(&review.Services{Clock: uc.clock}, b.ID(), b.Service().ID, actor, rating, comment)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uc.reviews.Create(ctx, rev)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Wrapf(review.ErrReviewAlreadyExists, "booking %s", bookingID)
		}
		return uuid.Nil, errs.Wrap(err, "failed to create review")
	}
	return id, nil
}

func (uc *customerBookingUseCaseImpl) ListMine(ctx context.Context, actor user.Principal, page, limit int) (*ListResult, error) {
	return uc.list(ctx, actor, shared.BookingFilter{OwnerEmail: actor.Email, Page: page, Limit: limit})
}
