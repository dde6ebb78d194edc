//go:build unit

package booking_test

import (
	"testing"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusConfirmed,
	booking.StatusPlanning,
	booking.StatusMaterials,
	booking.StatusOnWay,
	booking.StatusSetup,
	booking.StatusCompleted,
	booking.StatusPaid,
	booking.StatusCancelled,
}

var (
	customer  = builder.NewPrincipalBuilder().Build()
	decorator = builder.NewPrincipalBuilder().AsDecorator().Build()
	admin     = builder.NewPrincipalBuilder().AsAdmin().Build()
	stranger  = builder.NewPrincipalBuilder().With(func(p *builder.PrincipalBuilder) { p.Email = "other@example.com" }).Build()
)

func assignedBooking(s booking.Status) *booking.Booking {
	return builder.NewBookingBuilder().WithStatus(s).WithDecorator(decorator.Email).BuildDomain()
}

func TestCanTransition_Customer(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			b := assignedBooking(from)
			want := from == booking.StatusPending && to == booking.StatusCancelled
			assert.Equal(t, want, booking.CanTransition(from, to, customer, b, ""), "%s -> %s", from, to)
		}
	}

	t.Run("only the owner may cancel", func(t *testing.T) {
		b := assignedBooking(booking.StatusPending)
		strangerCustomer := stranger
		assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusCancelled, strangerCustomer, b, ""))
	})

	t.Run("owner match ignores case", func(t *testing.T) {
		b := assignedBooking(booking.StatusPending)
		shouty := customer
		shouty.Email = "Customer@Example.COM"
		assert.True(t, booking.CanTransition(booking.StatusPending, booking.StatusCancelled, shouty, b, ""))
	})
}

func TestCanTransition_Decorator(t *testing.T) {
	ladder := map[booking.Status]booking.Status{
		booking.StatusConfirmed: booking.StatusPlanning,
		booking.StatusPlanning:  booking.StatusMaterials,
		booking.StatusMaterials: booking.StatusOnWay,
		booking.StatusOnWay:     booking.StatusSetup,
		booking.StatusSetup:     booking.StatusCompleted,
	}
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			b := assignedBooking(from)
			next, ok := ladder[from]
			want := ok && next == to
			assert.Equal(t, want, booking.CanTransition(from, to, decorator, b, ""), "%s -> %s", from, to)
		}
	}

	t.Run("unassigned decorator is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPlanning).WithDecorator("someone@example.com").BuildDomain()
		assert.False(t, booking.CanTransition(booking.StatusPlanning, booking.StatusMaterials, decorator, b, ""))
	})

	t.Run("pending to completed is rejected", func(t *testing.T) {
		b := assignedBooking(booking.StatusPending)
		assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusCompleted, decorator, b, ""))
	})
}

func TestCanTransition_PaymentCallback(t *testing.T) {
	callback := user.PaymentCallback()
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			b := assignedBooking(from)
			want := from == booking.StatusCompleted && to == booking.StatusPaid
			assert.Equal(t, want, booking.CanTransition(from, to, callback, b, ""), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_Admin(t *testing.T) {
	t.Run("terminal states never move", func(t *testing.T) {
		for _, from := range []booking.Status{booking.StatusPaid, booking.StatusCancelled} {
			for _, to := range allStatuses {
				assert.False(t, booking.CanTransition(from, to, admin, assignedBooking(from), ""), "%s -> %s", from, to)
			}
		}
	})

	t.Run("never targets paid", func(t *testing.T) {
		for _, from := range allStatuses {
			assert.False(t, booking.CanTransition(from, booking.StatusPaid, admin, assignedBooking(from), ""), "%s -> paid", from)
		}
	})

	t.Run("confirm requires a decorator", func(t *testing.T) {
		unassigned := builder.NewBookingBuilder().BuildDomain()
		assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusConfirmed, admin, unassigned, ""))
		assert.True(t, booking.CanTransition(booking.StatusPending, booking.StatusConfirmed, admin, unassigned, "deco@example.com"))
	})

	t.Run("malformed decorator email is rejected", func(t *testing.T) {
		unassigned := builder.NewBookingBuilder().BuildDomain()
		assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusConfirmed, admin, unassigned, "not-an-email"))
	})

	t.Run("decorator can only be supplied on a pending booking", func(t *testing.T) {
		b := assignedBooking(booking.StatusPlanning)
		assert.False(t, booking.CanTransition(booking.StatusPlanning, booking.StatusMaterials, admin, b, "new@example.com"))
	})

	t.Run("override moves an assigned booking anywhere but paid", func(t *testing.T) {
		for _, from := range allStatuses {
			if from.IsTerminal() {
				continue
			}
			for _, to := range allStatuses {
				want := to != from && to != booking.StatusPaid
				assert.Equal(t, want, booking.CanTransition(from, to, admin, assignedBooking(from), ""), "%s -> %s", from, to)
			}
		}
	})

	t.Run("operational states need an assigned decorator", func(t *testing.T) {
		unassigned := builder.NewBookingBuilder().BuildDomain()
		assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusPlanning, admin, unassigned, ""))
		assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusCompleted, admin, unassigned, ""))
		assert.True(t, booking.CanTransition(booking.StatusPending, booking.StatusCancelled, admin, unassigned, ""))
	})
}

func TestCanTransition_RejectsUnknownInputs(t *testing.T) {
	b := assignedBooking(booking.StatusPending)
	assert.False(t, booking.CanTransition("bogus", booking.StatusCancelled, customer, b, ""))
	assert.False(t, booking.CanTransition(booking.StatusPending, "bogus", admin, b, ""))
	assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusCancelled, customer, nil, ""))
	assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusCancelled, user.Principal{Email: customer.Email}, b, ""))
}

func TestCheckTransition(t *testing.T) {
	b := assignedBooking(booking.StatusPending)

	err := booking.CheckTransition(booking.StatusPending, booking.StatusSetup, decorator, b, "")
	require.ErrorIs(t, err, booking.ErrIllegalTransition)
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "setup")

	confirmed := assignedBooking(booking.StatusConfirmed)
	require.ErrorIs(t, booking.CheckTransition(booking.StatusConfirmed, booking.StatusCancelled, customer, confirmed, ""), booking.ErrIllegalTransition)

	require.NoError(t, booking.CheckTransition(booking.StatusPending, booking.StatusCancelled, customer, b, ""))
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := booking.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := booking.ParseStatus("archived")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}
