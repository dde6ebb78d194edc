package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"styledecor/internal/pkg/config"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the slice of *amqp.Channel the queue needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type emailMessage struct {
	Template      string `json:"template"`
	To            string `json:"to"`
	CustomerName  string `json:"customerName,omitempty"`
	BookingID     string `json:"bookingId"`
	ServiceName   string `json:"serviceName,omitempty"`
	Status        string `json:"status,omitempty"`
	DecoratorName string `json:"decoratorName,omitempty"`
}

// EmailQueue hands notifications to the mail worker through a durable queue.
type EmailQueue struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	open    func() (channel, error)
	queue   string
	logger  *slog.Logger
	nowFunc func() time.Time
}

func NewEmailQueue(cfg config.RabbitMQConfig, logger *slog.Logger) (*EmailQueue, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}
	q := &EmailQueue{conn: conn, queue: cfg.Queue, logger: logger, nowFunc: time.Now}
	q.open = func() (channel, error) { return conn.Channel() }
	return q, nil
}

func newEmailQueueWithChannel(open func() (channel, error), queue string, logger *slog.Logger, now func() time.Time) *EmailQueue {
	return &EmailQueue{open: open, queue: queue, logger: logger, nowFunc: now}
}

func (q *EmailQueue) Notify(ctx context.Context, n shared.Notification) error {
	if n.To == "" {
		return errs.New("notification has no recipient")
	}
	body, err := json.Marshal(toEmailMessage(n))
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	// a channel per publish; amqp channels are not safe for concurrent use
	q.mu.Lock()
	ch, err := q.open()
	q.mu.Unlock()
	if err != nil {
		return errs.Wrap(err, "failed to open channel")
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(q.queue, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "failed to declare queue %s", q.queue)
	}

	err = ch.PublishWithContext(ctx, "", q.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    q.nowFunc(),
		Type:         n.Template,
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	q.logger.Debug("notification queued", "template", n.Template, "bookingId", n.BookingID)
	return nil
}

func (q *EmailQueue) Close() error {
	if q.conn == nil {
		return nil
	}
	return q.conn.Close()
}

func toEmailMessage(n shared.Notification) emailMessage {
	return emailMessage{
		Template:      n.Template,
		To:            n.To,
		CustomerName:  n.CustomerName,
		BookingID:     n.BookingID.String(),
		ServiceName:   n.ServiceName,
		Status:        string(n.Status),
		DecoratorName: n.DecoratorName,
	}
}

// LogNotifier stands in when RabbitMQ is disabled.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n shared.Notification) error {
	l.logger.Info("[MOCK] notification",
		"template", n.Template,
		"to", n.To,
		"bookingId", n.BookingID,
		"status", n.Status,
	)
	return nil
}
