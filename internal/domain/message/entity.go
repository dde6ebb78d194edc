package message

import (
	"sort"
	"strings"
	"time"

	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage = errs.New("message text cannot be empty")
	ErrThreadClosed = errs.New("chat is closed for cancelled bookings")
	ErrNotFound     = errs.New("message not found in thread")
	ErrTextTooLong  = errs.New("message text is too long")
)

const MaxTextLength = 2000

type Message struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	senderEmail string
	senderName  string
	text        string
	timestamp   time.Time
	seq         int64
	readBy      map[string]struct{}
}

// NewMessage validates text and builds an unsaved message. seq stays zero
// until storage assigns insertion order.
func NewMessage(bookingID uuid.UUID, sender user.Principal, text string, now time.Time) (*Message, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil, ErrEmptyMessage
	}
	if len(t) > MaxTextLength {
		return nil, errs.Wrapf(ErrTextTooLong, "text exceeds %d characters", MaxTextLength)
	}
	return &Message{
		id:          uuid.New(),
		bookingID:   bookingID,
		senderEmail: user.NormalizeEmail(sender.Email),
		senderName:  sender.DisplayName,
		text:        t,
		timestamp:   now,
		readBy:      map[string]struct{}{},
	}, nil
}

func ReconstructMessage(id, bookingID uuid.UUID, senderEmail, senderName, text string, timestamp time.Time, seq int64, readBy []string) *Message {
	m := &Message{
		id:          id,
		bookingID:   bookingID,
		senderEmail: senderEmail,
		senderName:  senderName,
		text:        text,
		timestamp:   timestamp,
		seq:         seq,
		readBy:      make(map[string]struct{}, len(readBy)),
	}
	for _, e := range readBy {
		m.readBy[user.NormalizeEmail(e)] = struct{}{}
	}
	return m
}

func (m *Message) IsAuthoredBy(email string) bool {
	return user.NormalizeEmail(email) == m.senderEmail
}

func (m *Message) IsReadBy(email string) bool {
	_, ok := m.readBy[user.NormalizeEmail(email)]
	return ok
}

// IsUnreadFor is true for counterpart messages the viewer has not seen.
func (m *Message) IsUnreadFor(email string) bool {
	return !m.IsAuthoredBy(email) && !m.IsReadBy(email)
}

// ReadBy returns the reader emails in lexical order.
func (m *Message) ReadBy() []string {
	out := make([]string, 0, len(m.readBy))
	for e := range m.readBy {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) BookingID() uuid.UUID { return m.bookingID }
func (m *Message) SenderEmail() string  { return m.senderEmail }
func (m *Message) SenderName() string   { return m.senderName }
func (m *Message) Text() string         { return m.text }
func (m *Message) Timestamp() time.Time { return m.timestamp }
func (m *Message) Seq() int64           { return m.seq }
