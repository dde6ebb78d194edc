package response

import (
	"time"

	"styledecor/internal/domain/message"
	"styledecor/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"bookingId"`
	SenderEmail string    `json:"senderEmail"`
	SenderName  string    `json:"senderName"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	ReadBy      []string  `json:"readBy"`
}

func FromMessage(m *message.Message) *MessageResponse {
	return &MessageResponse{
		ID:          m.ID(),
		BookingID:   m.BookingID(),
		SenderEmail: m.SenderEmail(),
		SenderName:  m.SenderName(),
		Text:        m.Text(),
		Timestamp:   m.Timestamp(),
		ReadBy:      m.ReadBy(),
	}
}

func FromMessages(ms []*message.Message) []*MessageResponse {
	res := make([]*MessageResponse, len(ms))
	for i, m := range ms {
		res[i] = FromMessage(m)
	}
	return res
}

type SendMessageResponse struct {
	InsertedID uuid.UUID        `json:"insertedId"`
	Message    *MessageResponse `json:"message"`
}

func FromSendResult(r *usecase.SendResult) *SendMessageResponse {
	return &SendMessageResponse{InsertedID: r.InsertedID, Message: FromMessage(r.Message)}
}

type MarkReadResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
	UnreadCount   int   `json:"unreadCount"`
}

func FromReadResult(r *usecase.ReadResult) (*MarkReadResponse, error) {
	resp := &MarkReadResponse{}
	if err := copier.Copy(resp, r); err != nil {
		return nil, err
	}
	return resp, nil
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
