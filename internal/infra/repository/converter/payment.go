package converter

import (
	"styledecor/internal/domain/pricing"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/pkg/pgconv"
	"styledecor/internal/usecase/shared"
)

func PaymentToRow(p *shared.Payment) pgquery.PaymentRow {
	return pgquery.PaymentRow{
		ID:            p.ID,
		BookingID:     p.BookingID,
		SessionID:     p.SessionID,
		TransactionID: p.TransactionID,
		TrackingID:    p.TrackingID,
		CustomerEmail: p.CustomerEmail,
		AmountCents:   p.Amount.Cents(),
		Currency:      p.Currency,
		PaidAt:        pgconv.TimeToPgtype(p.PaidAt),
	}
}

func PaymentRowToShared(row pgquery.PaymentRow) *shared.Payment {
	return &shared.Payment{
		ID:            row.ID,
		BookingID:     row.BookingID,
		SessionID:     row.SessionID,
		TransactionID: row.TransactionID,
		TrackingID:    row.TrackingID,
		CustomerEmail: row.CustomerEmail,
		Amount:        pricing.NewMoney(row.AmountCents),
		Currency:      row.Currency,
		PaidAt:        pgconv.TimeFromPgtype(row.PaidAt),
	}
}

func StatsRowToShared(row pgquery.BookingStatsRow) *shared.BookingStats {
	return &shared.BookingStats{
		TotalBookings: row.TotalBookings,
		PaidBookings:  row.PaidBookings,
		Revenue:       pricing.NewMoney(row.RevenueCents),
	}
}
