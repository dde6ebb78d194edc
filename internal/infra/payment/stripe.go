package payment

import (
	"context"
	"log/slog"

	"styledecor/internal/domain/pricing"
	"styledecor/internal/pkg/config"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const metadataBookingID = "bookingId"

var (
	ErrStripeAPI          = errs.New("stripe API error")
	ErrMissingBookingMeta = errs.New("checkout session carries no booking id")
)

// checkoutSessions is the part of the Stripe client used here.
type checkoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions   checkoutSessions
	currency   string
	successURL string
	cancelURL  string
	logger     *slog.Logger
}

func NewStripeGateway(cfg config.StripeConfig, logger *slog.Logger) *StripeGateway {
	sc := client.New(cfg.SecretKey, nil)
	logger.Info("stripe client initialized")
	return newStripeGateway(sc.CheckoutSessions, cfg, logger)
}

func newStripeGateway(sessions checkoutSessions, cfg config.StripeConfig, logger *slog.Logger) *StripeGateway {
	return &StripeGateway{
		sessions:   sessions,
		currency:   cfg.Currency,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		logger:     logger,
	}
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, req shared.CheckoutRequest) (*shared.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.CustomerEmail),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.currency),
					UnitAmount: stripe.Int64(req.Amount.Cents()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ServiceName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{metadataBookingID: req.BookingID.String()},
	}
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		g.logger.Error("failed to create checkout session", "bookingId", req.BookingID, "error", err)
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrStripeAPI)
	}
	g.logger.Info("checkout session created", "bookingId", req.BookingID, "sessionId", s.ID)
	return &shared.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*shared.PaidSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "get checkout session %s", sessionID), ErrStripeAPI)
	}

	bookingID, err := uuid.Parse(s.Metadata[metadataBookingID])
	if err != nil {
		return nil, errs.Wrapf(ErrMissingBookingMeta, "session %s", sessionID)
	}

	out := &shared.PaidSession{
		ID:            s.ID,
		BookingID:     bookingID,
		Paid:          s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Amount:        pricing.NewMoney(s.AmountTotal),
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	return out, nil
}
