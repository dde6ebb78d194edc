package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"styledecor/internal/pkg/config"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/IBM/sarama"
)

type envelope struct {
	Type string                    `json:"type"`
	Data shared.StatusChangedEvent `json:"data"`
}

// Producer publishes booking status events keyed by booking id so a
// booking's history stays ordered within its partition.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	mockMode bool
	logger   *slog.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) (*Producer, error) {
	if !cfg.Enabled {
		logger.Warn("kafka disabled, status events will only be logged")
		return &Producer{topic: cfg.Topic, mockMode: true, logger: logger}, nil
	}

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 5
	sc.Producer.Return.Successes = true

	p, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	return NewProducerWith(p, cfg.Topic, logger), nil
}

func NewProducerWith(p sarama.SyncProducer, topic string, logger *slog.Logger) *Producer {
	return &Producer{producer: p, topic: topic, logger: logger}
}

func (p *Producer) PublishStatusChanged(_ context.Context, ev shared.StatusChangedEvent) error {
	value, err := json.Marshal(envelope{Type: shared.EventTypeStatusChanged, Data: ev})
	if err != nil {
		return errs.Wrap(err, "failed to encode status event")
	}

	if p.mockMode {
		p.logger.Info("[MOCK] status event",
			"topic", p.topic,
			"bookingId", ev.BookingID,
			"from", ev.From,
			"to", ev.To,
		)
		return nil
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.BookingID.String()),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return errs.Wrapf(err, "failed to publish status event for booking %s", ev.BookingID)
	}
	p.logger.Debug("status event published", "topic", p.topic, "partition", partition, "offset", offset)
	return nil
}

func (p *Producer) Close() error {
	if p.mockMode || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
