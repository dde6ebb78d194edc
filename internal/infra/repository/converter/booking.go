package converter

import (
	"encoding/json"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/pkg/pgconv"
)

type addOnJSON struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

func DraftToInsertParams(d *booking.Draft) (pgquery.InsertBookingParams, error) {
	addOns := make([]addOnJSON, len(d.AddOns))
	for i, a := range d.AddOns {
		addOns[i] = addOnJSON{Name: a.Name, PriceCents: a.Price.Cents()}
	}
	raw, err := json.Marshal(addOns)
	if err != nil {
		return pgquery.InsertBookingParams{}, err
	}

	return pgquery.InsertBookingParams{
		CustomerEmail:      d.CustomerEmail,
		CustomerName:       d.CustomerName,
		ServiceID:          d.Service.ID,
		ServiceName:        d.Service.Name,
		ServiceImage:       d.Service.Image,
		Date:               pgconv.DateToPgtype(d.Date),
		Slot:               d.Slot,
		ServiceType:        d.ServiceType.String(),
		Address:            d.Address,
		BasePriceCents:     d.BasePrice.Cents(),
		AddOns:             raw,
		CouponCode:         pgconv.TextFromString(d.CouponCode),
		DiscountPercent:    pgconv.Float64PtrToPgtype(d.DiscountPercent),
		PriceCents:         d.Price.Cents(),
		OriginalPriceCents: d.OriginalPrice.Cents(),
	}, nil
}

func BookingRowToDomain(row pgquery.BookingRow) (*booking.Booking, error) {
	var addOns []addOnJSON
	if len(row.AddOns) > 0 {
		if err := json.Unmarshal(row.AddOns, &addOns); err != nil {
			return nil, err
		}
	}
	domainAddOns := make([]pricing.AddOn, len(addOns))
	for i, a := range addOns {
		domainAddOns[i] = pricing.AddOn{Name: a.Name, Price: pricing.NewMoney(a.PriceCents)}
	}

	return booking.ReconstructBooking(booking.BookingRecord{
		ID:            row.ID,
		CustomerEmail: row.CustomerEmail,
		CustomerName:  row.CustomerName,
		Service: booking.ServiceSnapshot{
			ID:        row.ServiceID,
			Name:      row.ServiceName,
			Image:     row.ServiceImage,
			BasePrice: pricing.NewMoney(row.BasePriceCents),
		},
		DecoratorEmail:  pgconv.StringFromPgtype(row.DecoratorEmail),
		Status:          booking.Status(row.Status),
		Date:            pgconv.TimeFromDate(row.Date),
		Slot:            row.Slot,
		ServiceType:     booking.ServiceType(row.ServiceType),
		Address:         row.Address,
		BasePrice:       pricing.NewMoney(row.BasePriceCents),
		AddOns:          domainAddOns,
		CouponCode:      pgconv.StringFromPgtype(row.CouponCode),
		DiscountPercent: pgconv.Float64PtrFromPgtype(row.DiscountPercent),
		Price:           pricing.NewMoney(row.PriceCents),
		OriginalPrice:   pricing.NewMoney(row.OriginalPriceCents),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
