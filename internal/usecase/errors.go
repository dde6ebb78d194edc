package usecase

import (
	"errors"
	"fmt"

	"styledecor/internal/domain/booking"
	"styledecor/internal/infra"
	"styledecor/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrForbidden            = errs.New("principal may not act on this booking")
	ErrNotPayable           = errs.New("booking is not awaiting payment")
	ErrPaymentNotConfirmed  = errs.New("payment session is not paid")
	ErrWishlistItemNotFound = errs.New("wishlist item not found")
)

// NoOpWriteWarning reports a write that matched nothing because another
// writer got there first. Current is the refetched booking, nil when the
// booking no longer exists.
type NoOpWriteWarning struct {
	Op        string
	BookingID uuid.UUID
	Current   *booking.Booking
}

func (w *NoOpWriteWarning) Error() string {
	if w.Current == nil {
		return fmt.Sprintf("%s on booking %s changed nothing: booking no longer exists", w.Op, w.BookingID)
	}
	return fmt.Sprintf("%s on booking %s changed nothing: status is now %s", w.Op, w.BookingID, w.Current.Status())
}

func AsNoOpWrite(err error) (*NoOpWriteWarning, bool) {
	var w *NoOpWriteWarning
	if errors.As(err, &w) {
		return w, true
	}
	return nil, false
}

func mapBookingErr(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrapf(ErrBookingNotFound, "booking %s", id)
	}
	return err
}
