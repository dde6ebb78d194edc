package api

import (
	"net/http"

	reqdto "styledecor/internal/handler/dto/request"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	customer usecase.CustomerBookingUseCase
}

func NewReviewHandler(customer usecase.CustomerBookingUseCase) *ReviewHandler {
	return &ReviewHandler{customer: customer}
}

// @Summary Create review
// @Description Review a completed or paid booking. One review per booking.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.InsertedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	id, err := h.customer.Review(c.Request.Context(), p, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.InsertedResponse{InsertedID: id})
}
