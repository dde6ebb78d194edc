package pgquery

import "context"

type BookingStatsRow struct {
	TotalBookings int64
	PaidBookings  int64
	RevenueCents  int64
}

const getBookingStats = `
SELECT
    (SELECT COUNT(*) FROM bookings),
    (SELECT COUNT(*) FROM payments),
    (SELECT COALESCE(SUM(amount_cents), 0) FROM payments)::bigint`

func (q *Queries) GetBookingStats(ctx context.Context, db DBTX) (BookingStatsRow, error) {
	var row BookingStatsRow
	err := db.QueryRow(ctx, getBookingStats).Scan(&row.TotalBookings, &row.PaidBookings, &row.RevenueCents)
	return row, err
}
