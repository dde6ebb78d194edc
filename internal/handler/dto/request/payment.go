package request

import "github.com/google/uuid"

type CheckoutRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
}

type PaymentSuccessQuery struct {
	SessionID string `form:"session_id" binding:"required"`
}
