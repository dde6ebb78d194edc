package booking

import (
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/errs"
)

// CanTransition is the single legality check for status changes.
// decoratorEmail is the decorator supplied in the same action, empty when
// none is supplied. It never touches storage.
func CanTransition(from, to Status, actor user.Principal, b *Booking, decoratorEmail string) bool {
	if b == nil || !from.IsValid() || !to.IsValid() || from == to || from.IsTerminal() {
		return false
	}

	switch actor.Role {
	case user.RoleCustomer:
		return from == StatusPending && to == StatusCancelled &&
			decoratorEmail == "" && actor.Is(b.CustomerEmail())

	case user.RoleDecorator:
		next, ok := NextStatus(from)
		return ok && to == next && from.IsOperational() &&
			decoratorEmail == "" && actor.Is(b.DecoratorEmail())

	case user.RolePayment:
		return from == StatusCompleted && to == StatusPaid && decoratorEmail == ""

	case user.RoleAdmin:
		return canAdminTransition(from, to, b, decoratorEmail)

	default:
		return false
	}
}

func canAdminTransition(from, to Status, b *Booking, decoratorEmail string) bool {
	// payment is a side-channel, never a manual rung
	if to == StatusPaid {
		return false
	}
	if decoratorEmail != "" {
		if from != StatusPending {
			return false
		}
		if _, err := user.NewEmail(decoratorEmail); err != nil {
			return false
		}
	}
	if from == StatusPending && to == StatusConfirmed {
		return decoratorEmail != "" || b.DecoratorEmail() != ""
	}
	if to.IsOperational() || to == StatusCompleted {
		return decoratorEmail != "" || b.DecoratorEmail() != ""
	}
	return true
}

// CheckTransition is CanTransition with a descriptive ErrIllegalTransition.
func CheckTransition(from, to Status, actor user.Principal, b *Booking, decoratorEmail string) error {
	if CanTransition(from, to, actor, b, decoratorEmail) {
		return nil
	}
	return errs.Wrapf(ErrIllegalTransition, "%s cannot move booking from %s to %s", actor.Role, from, to)
}
