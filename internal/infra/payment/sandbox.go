package payment

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"styledecor/internal/pkg/config"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownSession = errs.New("unknown checkout session")

// SandboxGateway settles every checkout immediately. It is used when no
// Stripe key is configured and by the end-to-end tests.
type SandboxGateway struct {
	mu         sync.Mutex
	sessions   map[string]shared.PaidSession
	currency   string
	successURL string
	logger     *slog.Logger
}

func NewSandboxGateway(cfg config.StripeConfig, logger *slog.Logger) *SandboxGateway {
	logger.Warn("stripe key not configured, using sandbox payments")
	return &SandboxGateway{
		sessions:   make(map[string]shared.PaidSession),
		currency:   cfg.Currency,
		successURL: cfg.SuccessURL,
		logger:     logger,
	}
}

func (g *SandboxGateway) CreateCheckout(_ context.Context, req shared.CheckoutRequest) (*shared.CheckoutSession, error) {
	id := "cs_sandbox_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	g.mu.Lock()
	g.sessions[id] = shared.PaidSession{
		ID:            id,
		BookingID:     req.BookingID,
		Paid:          true,
		TransactionID: "pi_sandbox_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:        req.Amount,
		Currency:      g.currency,
		CustomerEmail: req.CustomerEmail,
	}
	g.mu.Unlock()

	g.logger.Info("[MOCK] checkout session created", "bookingId", req.BookingID, "sessionId", id)
	return &shared.CheckoutSession{
		ID:  id,
		URL: strings.ReplaceAll(g.successURL, "{CHECKOUT_SESSION_ID}", id),
	}, nil
}

func (g *SandboxGateway) GetSession(_ context.Context, sessionID string) (*shared.PaidSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sessionID]
	if !ok {
		return nil, errs.Wrapf(ErrUnknownSession, "session %s", sessionID)
	}
	return &s, nil
}
