//go:build unit || e2e

package builder

import (
	"time"

	"styledecor/internal/domain/message"
	"styledecor/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageBuilder struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	SenderEmail string
	SenderName  string
	Text        string
	Timestamp   time.Time
	Seq         int64
	ReadBy      []string
}

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		SenderEmail: "decorator@example.com",
		SenderName:  "Dana Decorator",
		Text:        "Materials arrive tomorrow",
		Timestamp:   time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Seq:         1,
		ReadBy:      []string{},
	}
}

func (m *MessageBuilder) With(mutate func(*MessageBuilder)) *MessageBuilder {
	mutate(m)
	return m
}

func (m *MessageBuilder) BuildDomain() *message.Message {
	return message.ReconstructMessage(m.ID, m.BookingID, m.SenderEmail, m.SenderName, m.Text, m.Timestamp, m.Seq, m.ReadBy)
}

func (m *MessageBuilder) BuildRow() pgquery.MessageRow {
	return pgquery.MessageRow{
		ID:          m.ID,
		Seq:         m.Seq,
		BookingID:   m.BookingID,
		SenderEmail: m.SenderEmail,
		SenderName:  m.SenderName,
		Text:        m.Text,
		CreatedAt:   pgtype.Timestamptz{Time: m.Timestamp, Valid: true},
		ReadBy:      m.ReadBy,
	}
}
