package request

import "github.com/google/uuid"

type SendMessageRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Text      string    `json:"text" binding:"required"`
}
