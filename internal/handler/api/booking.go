package api

import (
	"net/http"
	"strings"

	"styledecor/internal/domain/user"
	reqdto "styledecor/internal/handler/dto/request"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	customer  usecase.CustomerBookingUseCase
	decorator usecase.DecoratorBookingUseCase
	admin     usecase.AdminBookingUseCase
	query     usecase.BookingQueryUseCase
}

func NewBookingHandler(
	customer usecase.CustomerBookingUseCase,
	decorator usecase.DecoratorBookingUseCase,
	admin usecase.AdminBookingUseCase,
	query usecase.BookingQueryUseCase,
) *BookingHandler {
	return &BookingHandler{customer: customer, decorator: decorator, admin: admin, query: query}
}

// @Summary List bookings
// @Description Customers see their own bookings, decorators their assignments, admins everything (optionally filtered by email)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string false "Customer email filter (admin only)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	page, limit := q.Paging()
	ctx := c.Request.Context()

	var (
		result *usecase.ListResult
		err    error
	)
	switch p.Role {
	case user.RoleAdmin:
		result, err = h.admin.ListAll(ctx, p, strings.TrimSpace(q.Email), page, limit)
	case user.RoleDecorator:
		result, err = h.decorator.ListAssigned(ctx, p, page, limit)
	default:
		if q.Email != "" && !p.Is(q.Email) {
			respondError(c, errs.Wrap(usecase.ErrForbidden, "customers can only list their own bookings"))
			return
		}
		result, err = h.customer.ListMine(ctx, p, page, limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromListResult(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.query.Get(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetail(detail))
}

// @Summary Booking progress
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.TrackingResponse
// @Router /api/bookings/{id}/tracking [get]
func (h *BookingHandler) Tracking(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	t, err := h.query.Tracking(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTracking(t))
}

// @Summary Book a service
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	service, sel, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.customer.Book(c.Request.Context(), p, service, sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookResult(result))
}

// @Summary Update booking status
// @Description Admins assign a decorator (decoratorEmail) or force a status; decorators advance their assignment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Status change"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	ctx := c.Request.Context()

	var (
		result *usecase.TransitionResult
		err    error
	)
	switch {
	case p.IsAdmin() && req.IsAssignment():
		result, err = h.admin.AssignDecorator(ctx, p, id, *req.DecoratorEmail)
	case p.IsAdmin():
		status, perr := req.TargetStatus()
		if perr != nil {
			respondError(c, perr)
			return
		}
		result, err = h.admin.ForceSetStatus(ctx, p, id, status)
	case p.IsDecorator():
		status, perr := req.TargetStatus()
		if perr != nil {
			respondError(c, perr)
			return
		}
		result, err = h.decorator.AdvanceStatus(ctx, p, id, status)
	default:
		respondError(c, errs.Wrapf(usecase.ErrForbidden, "%s cannot update booking status", p.Role))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.customer.Cancel(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromCancelResult(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		bindFailed(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Booking stats
// @Description Admin dashboard totals: booking count, paid bookings and revenue from recorded payments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	stats, err := h.admin.Stats(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStats(stats))
}
