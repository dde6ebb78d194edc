package api

import (
	"net/http"

	reqdto "styledecor/internal/handler/dto/request"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	customer usecase.CustomerBookingUseCase
}

func NewPaymentHandler(customer usecase.CustomerBookingUseCase) *PaymentHandler {
	return &PaymentHandler{customer: customer}
}

// @Summary Start checkout
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Booking to pay"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/payment-checkout-session [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	checkout, err := h.customer.Pay(c.Request.Context(), p, req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromCheckout(checkout)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Confirm payment
// @Description Called by the storefront after the provider redirects back. Safe to repeat.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.PaymentSuccessResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payment-success [patch]
func (h *PaymentHandler) Success(c *gin.Context) {
	if _, ok := principal(c); !ok {
		return
	}
	var q reqdto.PaymentSuccessQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	receipt, err := h.customer.ConfirmPayment(c.Request.Context(), q.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromPaymentReceipt(receipt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
