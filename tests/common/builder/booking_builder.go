//go:build unit || e2e

package builder

import (
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"
	reqdto "styledecor/internal/handler/dto/request"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	CustomerEmail   string
	CustomerName    string
	ServiceID       string
	ServiceName     string
	ServiceImage    string
	DecoratorEmail  string
	Status          booking.Status
	Date            time.Time
	Slot            string
	ServiceType     booking.ServiceType
	Address         string
	BasePrice       pricing.Money
	AddOns          []pricing.AddOn
	CouponCode      string
	DiscountPercent *float64
	Price           pricing.Money
	OriginalPrice   pricing.Money
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		CustomerEmail: "customer@example.com",
		CustomerName:  "Casey Customer",
		ServiceID:     "svc-living-room",
		ServiceName:   "Living Room Makeover",
		ServiceImage:  "https://img.example.com/living.jpg",
		Status:        booking.StatusPending,
		Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Slot:          "10:00-12:00",
		ServiceType:   booking.ServiceTypeOnSite,
		Address:       "12 Garden Road",
		BasePrice:     pricing.NewMoney(50000),
		AddOns:        []pricing.AddOn{},
		Price:         pricing.NewMoney(50000),
		OriginalPrice: pricing.NewMoney(50000),
		CreatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithDecorator(email string) *BookingBuilder {
	b.DecoratorEmail = email
	return b
}

func (b *BookingBuilder) Service() booking.ServiceSnapshot {
	return booking.ServiceSnapshot{
		ID:        b.ServiceID,
		Name:      b.ServiceName,
		Image:     b.ServiceImage,
		BasePrice: b.BasePrice,
	}
}

func (b *BookingBuilder) Selections() booking.Selections {
	return booking.Selections{
		Address:     b.Address,
		Date:        b.Date,
		Slot:        b.Slot,
		ServiceType: b.ServiceType,
		AddOns:      b.AddOns,
		CouponCode:  b.CouponCode,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(booking.BookingRecord{
		ID:              b.ID,
		CustomerEmail:   b.CustomerEmail,
		CustomerName:    b.CustomerName,
		Service:         b.Service(),
		DecoratorEmail:  b.DecoratorEmail,
		Status:          b.Status,
		Date:            b.Date,
		Slot:            b.Slot,
		ServiceType:     b.ServiceType,
		Address:         b.Address,
		BasePrice:       b.BasePrice,
		AddOns:          b.AddOns,
		CouponCode:      b.CouponCode,
		DiscountPercent: b.DiscountPercent,
		Price:           b.Price,
		OriginalPrice:   b.OriginalPrice,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildRow() pgquery.BookingRow {
	return pgquery.BookingRow{
		ID:                 b.ID,
		CustomerEmail:      b.CustomerEmail,
		CustomerName:       b.CustomerName,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		ServiceImage:       b.ServiceImage,
		DecoratorEmail:     pgconv.TextFromString(b.DecoratorEmail),
		Status:             b.Status.String(),
		Date:               pgconv.DateToPgtype(b.Date),
		Slot:               b.Slot,
		ServiceType:        b.ServiceType.String(),
		Address:            b.Address,
		BasePriceCents:     b.BasePrice.Cents(),
		AddOns:             []byte("[]"),
		CouponCode:         pgconv.TextFromString(b.CouponCode),
		DiscountPercent:    pgconv.Float64PtrToPgtype(b.DiscountPercent),
		PriceCents:         b.Price.Cents(),
		OriginalPriceCents: b.OriginalPrice.Cents(),
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	addOns := make([]reqdto.AddOnRequest, len(b.AddOns))
	for i, a := range b.AddOns {
		addOns[i] = reqdto.AddOnRequest{Name: a.Name, Price: a.Price.Amount()}
	}
	return reqdto.CreateBookingRequest{
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		ServiceImage: b.ServiceImage,
		BasePrice:    b.BasePrice.Amount(),
		Address:      b.Address,
		Date:         b.Date.Format(time.DateOnly),
		Slot:         b.Slot,
		ServiceType:  b.ServiceType.String(),
		AddOns:       addOns,
		CouponCode:   b.CouponCode,
	}
}
