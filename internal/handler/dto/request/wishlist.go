package request

import (
	"strings"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/pkg/errs"
)

type AddWishlistRequest struct {
	ServiceID    string  `json:"serviceId" binding:"required"`
	ServiceName  string  `json:"serviceName" binding:"required"`
	ServiceImage string  `json:"serviceImage"`
	Price        float64 `json:"price" binding:"min=0"`
}

func (r AddWishlistRequest) ToDomain() (booking.ServiceSnapshot, error) {
	price, err := pricing.NewMoneyFromAmount(r.Price)
	if err != nil {
		return booking.ServiceSnapshot{}, errs.Wrapf(booking.ErrValidation, "price: %v", err)
	}
	return booking.ServiceSnapshot{
		ID:        strings.TrimSpace(r.ServiceID),
		Name:      strings.TrimSpace(r.ServiceName),
		Image:     r.ServiceImage,
		BasePrice: price,
	}, nil
}
