package review

import (
	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
)

type Services struct {
	Clock clock.Clock
}

// CheckEligibility allows the owning customer to review a finished
// booking. A paid booking is still finished work.
func CheckEligibility(b *booking.Booking, reviewer user.Principal) error {
	if !b.IsOwnedBy(reviewer) {
		return errs.Wrap(ErrBookingNotEligible, "only the booking owner can review")
	}
	switch b.Status() {
	case booking.StatusCompleted, booking.StatusPaid:
		return nil
	default:
		return errs.Wrapf(ErrBookingNotEligible, "booking is %s", b.Status())
	}
}
