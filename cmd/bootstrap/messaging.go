package bootstrap

import (
	"context"
	"log/slog"

	"styledecor/internal/handler/api"
	"styledecor/internal/infra/events"
	"styledecor/internal/infra/notify"
	"styledecor/internal/infra/realtime"
	"styledecor/internal/pkg/config"
	"styledecor/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotifier,
		NewEventPublisher,
		realtime.NewHub,
		func(h *realtime.Hub) shared.Broadcaster { return h },
		func(h *realtime.Hub) api.SocketServer { return h },
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Warn("rabbitmq disabled, notifications will only be logged")
		return notify.NewLogNotifier(logger), nil
	}
	q, err := notify.NewEmailQueue(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return q.Close()
		},
	})
	return q, nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	p, err := events.NewProducer(cfg.Kafka, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}
