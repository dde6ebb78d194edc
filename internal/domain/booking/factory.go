package booking

import (
	"strings"
	"time"

	"styledecor/internal/domain/coupon"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"

	"github.com/google/uuid"
)

type CouponLookup interface {
	Lookup(raw string) (coupon.Code, coupon.Percent, error)
}

type Services struct {
	Clock   clock.Clock
	Coupons CouponLookup
}

// ServiceSnapshot freezes the catalog entry at booking time.
type ServiceSnapshot struct {
	ID        string
	Name      string
	Image     string
	BasePrice pricing.Money
}

type Selections struct {
	Address     string
	Date        time.Time
	Slot        string
	ServiceType ServiceType
	AddOns      []pricing.AddOn
	CouponCode  string
}

// Draft is a validated, priced booking that has not been persisted yet.
type Draft struct {
	CustomerEmail   string
	CustomerName    string
	Service         ServiceSnapshot
	Date            time.Time
	Slot            string
	ServiceType     ServiceType
	Address         string
	BasePrice       pricing.Money
	AddOns          []pricing.AddOn
	CouponCode      string
	DiscountPercent *float64
	OriginalPrice   pricing.Money
	Price           pricing.Money

	// CouponErr is set when a coupon was supplied but rejected. The draft
	// is still priced without discount.
	CouponErr error
}

func NewDraft(services *Services, customer user.Principal, service ServiceSnapshot, sel Selections) (*Draft, error) {
	address := strings.TrimSpace(sel.Address)
	if address == "" {
		return nil, errs.Wrap(ErrValidation, "address is required")
	}
	if !sel.ServiceType.IsValid() {
		return nil, errs.Wrapf(ErrValidation, "service type %q is not supported", sel.ServiceType)
	}
	if sel.Date.IsZero() {
		return nil, errs.Wrap(ErrValidation, "date is required")
	}
	now := services.Clock.Now()
	// compare calendar days in the server zone
	y, m, day := sel.Date.Date()
	if time.Date(y, m, day, 0, 0, 0, 0, now.Location()).Before(clock.StartOfDay(now)) {
		return nil, errs.Wrap(ErrValidation, "date cannot be in the past")
	}
	if strings.TrimSpace(service.ID) == "" || strings.TrimSpace(service.Name) == "" {
		return nil, errs.Wrap(ErrValidation, "service reference is required")
	}
	if service.BasePrice.Cents() < 0 {
		return nil, errs.Wrap(ErrValidation, "base price cannot be negative")
	}

	addOns := make([]pricing.AddOn, 0, len(sel.AddOns))
	for _, a := range sel.AddOns {
		name := strings.TrimSpace(a.Name)
		if name == "" || a.Price.Cents() < 0 {
			return nil, errs.Wrap(ErrValidation, "add-on needs a name and a non-negative price")
		}
		addOns = append(addOns, pricing.AddOn{Name: name, Price: a.Price})
	}

	d := &Draft{
		CustomerEmail: user.NormalizeEmail(customer.Email),
		CustomerName:  customer.DisplayName,
		Service:       service,
		Date:          sel.Date,
		Slot:          strings.TrimSpace(sel.Slot),
		ServiceType:   sel.ServiceType,
		Address:       address,
		BasePrice:     service.BasePrice,
		AddOns:        addOns,
	}

	percent := 0.0
	if raw := strings.TrimSpace(sel.CouponCode); raw != "" {
		code, p, err := services.Coupons.Lookup(raw)
		if err != nil {
			d.CouponErr = err
		} else {
			percent = p.Value()
			d.CouponCode = code.String()
			d.DiscountPercent = &percent
		}
	}

	total, err := pricing.ComputeTotal(service.BasePrice, addOns, percent)
	if err != nil {
		return nil, err
	}
	d.OriginalPrice = total.OriginalPrice
	d.Price = total.Price
	return d, nil
}

// Materialize turns the draft into a pending booking with the id and
// timestamps assigned by storage.
func (d *Draft) Materialize(id uuid.UUID, createdAt time.Time) *Booking {
	return ReconstructBooking(BookingRecord{
		ID:              id,
		CustomerEmail:   d.CustomerEmail,
		CustomerName:    d.CustomerName,
		Service:         d.Service,
		Status:          StatusPending,
		Date:            d.Date,
		Slot:            d.Slot,
		ServiceType:     d.ServiceType,
		Address:         d.Address,
		BasePrice:       d.BasePrice,
		AddOns:          d.AddOns,
		CouponCode:      d.CouponCode,
		DiscountPercent: d.DiscountPercent,
		Price:           d.Price,
		OriginalPrice:   d.OriginalPrice,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	})
}
