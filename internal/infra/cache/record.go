package cache

import (
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"

	"github.com/google/uuid"
)

type addOnRecord struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type bookingRecord struct {
	ID              uuid.UUID     `json:"id"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerName    string        `json:"customerName"`
	ServiceID       string        `json:"serviceId"`
	ServiceName     string        `json:"serviceName"`
	ServiceImage    string        `json:"serviceImage"`
	DecoratorEmail  string        `json:"decoratorEmail,omitempty"`
	Status          string        `json:"status"`
	Date            time.Time     `json:"date"`
	Slot            string        `json:"slot"`
	ServiceType     string        `json:"serviceType"`
	Address         string        `json:"address"`
	BasePriceCents  int64         `json:"basePriceCents"`
	AddOns          []addOnRecord `json:"addOns"`
	CouponCode      string        `json:"couponCode,omitempty"`
	DiscountPercent *float64      `json:"discountPercent,omitempty"`
	PriceCents      int64         `json:"priceCents"`
	OriginalCents   int64         `json:"originalPriceCents"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type pageRecord struct {
	Items []bookingRecord `json:"items"`
	Total int64           `json:"total"`
}

func toRecord(b *booking.Booking) bookingRecord {
	addOns := make([]addOnRecord, 0, len(b.AddOns()))
	for _, a := range b.AddOns() {
		addOns = append(addOns, addOnRecord{Name: a.Name, PriceCents: a.Price.Cents()})
	}
	s := b.Service()
	return bookingRecord{
		ID:              b.ID(),
		CustomerEmail:   b.CustomerEmail(),
		CustomerName:    b.CustomerName(),
		ServiceID:       s.ID,
		ServiceName:     s.Name,
		ServiceImage:    s.Image,
		DecoratorEmail:  b.DecoratorEmail(),
		Status:          b.Status().String(),
		Date:            b.Date(),
		Slot:            b.Slot(),
		ServiceType:     b.ServiceType().String(),
		Address:         b.Address(),
		BasePriceCents:  b.BasePrice().Cents(),
		AddOns:          addOns,
		CouponCode:      b.CouponCode(),
		DiscountPercent: b.DiscountPercent(),
		PriceCents:      b.Price().Cents(),
		OriginalCents:   b.OriginalPrice().Cents(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func (r bookingRecord) toDomain() *booking.Booking {
	addOns := make([]pricing.AddOn, len(r.AddOns))
	for i, a := range r.AddOns {
		addOns[i] = pricing.AddOn{Name: a.Name, Price: pricing.NewMoney(a.PriceCents)}
	}
	return booking.ReconstructBooking(booking.BookingRecord{
		ID:            r.ID,
		CustomerEmail: r.CustomerEmail,
		CustomerName:  r.CustomerName,
		Service: booking.ServiceSnapshot{
			ID:        r.ServiceID,
			Name:      r.ServiceName,
			Image:     r.ServiceImage,
			BasePrice: pricing.NewMoney(r.BasePriceCents),
		},
		DecoratorEmail:  r.DecoratorEmail,
		Status:          booking.Status(r.Status),
		Date:            r.Date,
		Slot:            r.Slot,
		ServiceType:     booking.ServiceType(r.ServiceType),
		Address:         r.Address,
		BasePrice:       pricing.NewMoney(r.BasePriceCents),
		AddOns:          addOns,
		CouponCode:      r.CouponCode,
		DiscountPercent: r.DiscountPercent,
		Price:           pricing.NewMoney(r.PriceCents),
		OriginalPrice:   pricing.NewMoney(r.OriginalCents),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	})
}
