package booking

import (
	"time"

	"styledecor/internal/domain/pricing"
	"styledecor/internal/domain/user"

	"github.com/google/uuid"
)

type Booking struct {
	id              uuid.UUID
	customerEmail   string
	customerName    string
	service         ServiceSnapshot
	decoratorEmail  string
	status          Status
	date            time.Time
	slot            string
	serviceType     ServiceType
	address         string
	basePrice       pricing.Money
	addOns          []pricing.AddOn
	couponCode      string
	discountPercent *float64
	price           pricing.Money
	originalPrice   pricing.Money
	createdAt       time.Time
	updatedAt       time.Time
}

// BookingRecord carries persisted columns into ReconstructBooking.
type BookingRecord struct {
	ID              uuid.UUID
	CustomerEmail   string
	CustomerName    string
	Service         ServiceSnapshot
	DecoratorEmail  string
	Status          Status
	Date            time.Time
	Slot            string
	ServiceType     ServiceType
	Address         string
	BasePrice       pricing.Money
	AddOns          []pricing.AddOn
	CouponCode      string
	DiscountPercent *float64
	Price           pricing.Money
	OriginalPrice   pricing.Money
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructBooking rebuilds a stored booking without revalidating it.
func ReconstructBooking(r BookingRecord) *Booking {
	addOns := r.AddOns
	if addOns == nil {
		addOns = []pricing.AddOn{}
	}
	return &Booking{
		id:              r.ID,
		customerEmail:   r.CustomerEmail,
		customerName:    r.CustomerName,
		service:         r.Service,
		decoratorEmail:  r.DecoratorEmail,
		status:          r.Status,
		date:            r.Date,
		slot:            r.Slot,
		serviceType:     r.ServiceType,
		address:         r.Address,
		basePrice:       r.BasePrice,
		addOns:          addOns,
		couponCode:      r.CouponCode,
		discountPercent: r.DiscountPercent,
		price:           r.Price,
		originalPrice:   r.OriginalPrice,
		createdAt:       r.CreatedAt,
		updatedAt:       r.UpdatedAt,
	}
}

func (b *Booking) IsOwnedBy(p user.Principal) bool    { return p.Is(b.customerEmail) }
func (b *Booking) IsAssignedTo(p user.Principal) bool { return p.Is(b.decoratorEmail) }

// IsParticipant reports whether p may read the booking and its chat.
func (b *Booking) IsParticipant(p user.Principal) bool {
	return p.IsAdmin() || b.IsOwnedBy(p) || b.IsAssignedTo(p)
}

func (b *Booking) Tracking() Tracking { return NewTracking(b.status) }

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CustomerEmail() string        { return b.customerEmail }
func (b *Booking) CustomerName() string         { return b.customerName }
func (b *Booking) Service() ServiceSnapshot     { return b.service }
func (b *Booking) DecoratorEmail() string       { return b.decoratorEmail }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) Slot() string                 { return b.slot }
func (b *Booking) ServiceType() ServiceType     { return b.serviceType }
func (b *Booking) Address() string              { return b.address }
func (b *Booking) BasePrice() pricing.Money     { return b.basePrice }
func (b *Booking) AddOns() []pricing.AddOn      { return append([]pricing.AddOn(nil), b.addOns...) }
func (b *Booking) CouponCode() string           { return b.couponCode }
func (b *Booking) DiscountPercent() *float64    { return b.discountPercent }
func (b *Booking) Price() pricing.Money         { return b.price }
func (b *Booking) OriginalPrice() pricing.Money { return b.originalPrice }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
