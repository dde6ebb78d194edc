package response

import (
	"styledecor/internal/usecase"

	"github.com/jinzhu/copier"
)

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func FromCheckout(c *usecase.Checkout) (*CheckoutResponse, error) {
	resp := &CheckoutResponse{}
	if err := copier.Copy(resp, c); err != nil {
		return nil, err
	}
	return resp, nil
}

type PaymentSuccessResponse struct {
	TransactionID string           `json:"transactionId"`
	TrackingID    string           `json:"trackingId"`
	Booking       *BookingResponse `json:"booking,omitempty" copier:"-"`
	Warnings      []string         `json:"warnings,omitempty"`
}

func FromPaymentReceipt(r *usecase.PaymentReceipt) (*PaymentSuccessResponse, error) {
	resp := &PaymentSuccessResponse{}
	if err := copier.Copy(resp, r); err != nil {
		return nil, err
	}
	resp.Booking = FromBooking(r.Booking)
	return resp, nil
}
