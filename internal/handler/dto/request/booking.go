package request

import (
	"strings"
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/pkg/patch"
)

type AddOnRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

type CreateBookingRequest struct {
	ServiceID    string         `json:"serviceId" binding:"required"`
	ServiceName  string         `json:"serviceName" binding:"required"`
	ServiceImage string         `json:"serviceImage"`
	BasePrice    float64        `json:"basePrice" binding:"min=0"`
	Address      string         `json:"address" binding:"required"`
	Date         string         `json:"date" binding:"required"`
	Slot         string         `json:"slot"`
	ServiceType  string         `json:"serviceType" binding:"required"`
	AddOns       []AddOnRequest `json:"addOns" binding:"dive"`
	CouponCode   string         `json:"couponCode"`
}

// ToDomain accepts either a calendar date or a full RFC 3339 timestamp.
func (r CreateBookingRequest) ToDomain() (booking.ServiceSnapshot, booking.Selections, error) {
	base, err := pricing.NewMoneyFromAmount(r.BasePrice)
	if err != nil {
		return booking.ServiceSnapshot{}, booking.Selections{}, errs.Wrapf(booking.ErrValidation, "basePrice: %v", err)
	}
	date, err := parseDate(r.Date)
	if err != nil {
		return booking.ServiceSnapshot{}, booking.Selections{}, err
	}

	addOns := make([]pricing.AddOn, len(r.AddOns))
	for i, a := range r.AddOns {
		price, err := pricing.NewMoneyFromAmount(a.Price)
		if err != nil {
			return booking.ServiceSnapshot{}, booking.Selections{}, errs.Wrapf(booking.ErrValidation, "addOns[%d]: %v", i, err)
		}
		addOns[i] = pricing.AddOn{Name: strings.TrimSpace(a.Name), Price: price}
	}

	service := booking.ServiceSnapshot{
		ID:        strings.TrimSpace(r.ServiceID),
		Name:      strings.TrimSpace(r.ServiceName),
		Image:     r.ServiceImage,
		BasePrice: base,
	}
	sel := booking.Selections{
		Address:     r.Address,
		Date:        date,
		Slot:        r.Slot,
		ServiceType: booking.ServiceType(r.ServiceType),
		AddOns:      addOns,
		CouponCode:  r.CouponCode,
	}
	return service, sel, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errs.Wrapf(booking.ErrValidation, "date %q is not a valid date", s)
}

// UpdateBookingRequest carries either an assignment or a status change.
type UpdateBookingRequest struct {
	Status         *string `json:"status"`
	DecoratorEmail *string `json:"decoratorEmail"`
}

func (r UpdateBookingRequest) IsAssignment() bool {
	return r.DecoratorEmail != nil && strings.TrimSpace(*r.DecoratorEmail) != ""
}

func (r UpdateBookingRequest) TargetStatus() (booking.Status, error) {
	if r.Status == nil {
		return "", errs.Wrap(booking.ErrValidation, "status is required")
	}
	return booking.ParseStatus(strings.TrimSpace(*r.Status))
}

type ListBookingsQuery struct {
	Email string `form:"email"`
	Page  *int   `form:"page" binding:"omitempty,min=1"`
	Limit *int   `form:"limit" binding:"omitempty,min=1"`
}

// Paging falls back to page 1 and the server default limit.
func (q ListBookingsQuery) Paging() (page, limit int) {
	return patch.Coalesce(q.Page, 1), patch.Coalesce(q.Limit, 0)
}
