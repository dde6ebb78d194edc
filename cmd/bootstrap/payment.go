package bootstrap

import (
	"log/slog"

	"styledecor/internal/infra/payment"
	"styledecor/internal/pkg/config"
	"styledecor/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) shared.PaymentGateway {
	if cfg.Stripe.SecretKey == "" {
		return payment.NewSandboxGateway(cfg.Stripe, logger)
	}
	return payment.NewStripeGateway(cfg.Stripe, logger)
}
