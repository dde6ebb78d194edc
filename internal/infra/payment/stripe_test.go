//go:build unit

package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"styledecor/internal/domain/pricing"
	"styledecor/internal/pkg/config"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

type fakeSessions struct {
	created *stripe.CheckoutSessionParams
	newErr  error
	session *stripe.CheckoutSession
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.created = params
	if f.newErr != nil {
		return nil, f.newErr
	}
	return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
}

func (f *fakeSessions) Get(id string, _ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if f.session == nil || f.session.ID != id {
		return nil, errors.New("no such checkout session")
	}
	return f.session, nil
}

func testStripeConfig() config.StripeConfig {
	return config.NewTestConfig().Stripe
}

func TestStripeGateway_CreateCheckout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bookingID := uuid.New()

	t.Run("builds a single line item in cents", func(t *testing.T) {
		fs := &fakeSessions{}
		g := newStripeGateway(fs, testStripeConfig(), logger)

		out, err := g.CreateCheckout(context.Background(), shared.CheckoutRequest{
			BookingID:     bookingID,
			CustomerEmail: "alice@example.com",
			ServiceName:   "Birthday Setup",
			Amount:        pricing.NewMoney(50400),
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", out.ID)
		assert.Equal(t, "https://checkout.stripe.test/cs_test_1", out.URL)

		require.Len(t, fs.created.LineItems, 1)
		item := fs.created.LineItems[0]
		assert.Equal(t, int64(50400), *item.PriceData.UnitAmount)
		assert.Equal(t, "usd", *item.PriceData.Currency)
		assert.Equal(t, "Birthday Setup", *item.PriceData.ProductData.Name)
		assert.Equal(t, bookingID.String(), fs.created.Metadata[metadataBookingID])
		assert.Equal(t, "alice@example.com", *fs.created.CustomerEmail)
	})

	t.Run("provider failure is marked", func(t *testing.T) {
		g := newStripeGateway(&fakeSessions{newErr: errors.New("card_declined")}, testStripeConfig(), logger)
		_, err := g.CreateCheckout(context.Background(), shared.CheckoutRequest{BookingID: bookingID})
		assert.ErrorIs(t, err, ErrStripeAPI)
	})
}

func TestStripeGateway_GetSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bookingID := uuid.New()

	cases := []struct {
		name       string
		session    *stripe.CheckoutSession
		expectErr  error
		expectPaid bool
		expectTxn  string
	}{
		{
			name: "paid session",
			session: &stripe.CheckoutSession{
				ID:            "cs_1",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
				AmountTotal:   50400,
				Currency:      stripe.CurrencyUSD,
				Metadata:      map[string]string{metadataBookingID: bookingID.String()},
				PaymentIntent: &stripe.PaymentIntent{ID: "pi_1"},
			},
			expectPaid: true,
			expectTxn:  "pi_1",
		},
		{
			name: "unpaid session",
			session: &stripe.CheckoutSession{
				ID:            "cs_1",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
				Metadata:      map[string]string{metadataBookingID: bookingID.String()},
			},
		},
		{
			name: "missing booking metadata",
			session: &stripe.CheckoutSession{
				ID:            "cs_1",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
			},
			expectErr: ErrMissingBookingMeta,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newStripeGateway(&fakeSessions{session: tc.session}, testStripeConfig(), logger)
			out, err := g.GetSession(context.Background(), "cs_1")
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, out.BookingID)
			assert.Equal(t, tc.expectPaid, out.Paid)
			assert.Equal(t, tc.expectTxn, out.TransactionID)
		})
	}
}

func TestSandboxGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := NewSandboxGateway(testStripeConfig(), logger)
	bookingID := uuid.New()

	cs, err := g.CreateCheckout(context.Background(), shared.CheckoutRequest{
		BookingID: bookingID,
		Amount:    pricing.NewMoney(1000),
	})
	require.NoError(t, err)
	assert.Contains(t, cs.URL, cs.ID)

	paid, err := g.GetSession(context.Background(), cs.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, bookingID, paid.BookingID)
	assert.NotEmpty(t, paid.TransactionID)

	_, err = g.GetSession(context.Background(), "cs_unknown")
	assert.ErrorIs(t, err, ErrUnknownSession)
}
