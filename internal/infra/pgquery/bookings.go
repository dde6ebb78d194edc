package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRow struct {
	ID                 uuid.UUID          `db:"id"`
	CustomerEmail      string             `db:"customer_email"`
	CustomerName       string             `db:"customer_name"`
	ServiceID          string             `db:"service_id"`
	ServiceName        string             `db:"service_name"`
	ServiceImage       string             `db:"service_image"`
	DecoratorEmail     pgtype.Text        `db:"decorator_email"`
	Status             string             `db:"status"`
	Date               pgtype.Date        `db:"date"`
	Slot               string             `db:"slot"`
	ServiceType        string             `db:"service_type"`
	Address            string             `db:"address"`
	BasePriceCents     int64              `db:"base_price_cents"`
	AddOns             []byte             `db:"add_ons"`
	CouponCode         pgtype.Text        `db:"coupon_code"`
	DiscountPercent    pgtype.Float8      `db:"discount_percent"`
	PriceCents         int64              `db:"price_cents"`
	OriginalPriceCents int64              `db:"original_price_cents"`
	CreatedAt          pgtype.Timestamptz `db:"created_at"`
	UpdatedAt          pgtype.Timestamptz `db:"updated_at"`
}

const bookingColumns = `id, customer_email, customer_name, service_id, service_name, service_image,
	decorator_email, status, date, slot, service_type, address, base_price_cents, add_ons,
	coupon_code, discount_percent, price_cents, original_price_cents, created_at, updated_at`

type InsertBookingParams struct {
	CustomerEmail      string
	CustomerName       string
	ServiceID          string
	ServiceName        string
	ServiceImage       string
	Date               pgtype.Date
	Slot               string
	ServiceType        string
	Address            string
	BasePriceCents     int64
	AddOns             []byte
	CouponCode         pgtype.Text
	DiscountPercent    pgtype.Float8
	PriceCents         int64
	OriginalPriceCents int64
}

const insertBooking = `
INSERT INTO bookings (
	customer_email, customer_name, service_id, service_name, service_image,
	status, date, slot, service_type, address, base_price_cents, add_ons,
	coupon_code, discount_percent, price_cents, original_price_cents
) VALUES ($1, $2, $3, $4, $5, 'pending', $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, insertBooking,
		arg.CustomerEmail, arg.CustomerName, arg.ServiceID, arg.ServiceName, arg.ServiceImage,
		arg.Date, arg.Slot, arg.ServiceType, arg.Address, arg.BasePriceCents, arg.AddOns,
		arg.CouponCode, arg.DiscountPercent, arg.PriceCents, arg.OriginalPriceCents,
	).Scan(&id)
	return id, err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	rows, err := db.Query(ctx, getBookingByID, id)
	if err != nil {
		return BookingRow{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[BookingRow])
}

// ListBookingsParams filters are optional; a NULL filter matches every row.
type ListBookingsParams struct {
	OwnerEmail     pgtype.Text
	DecoratorEmail pgtype.Text
	Limit          int32
	Offset         int32
}

const listBookings = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE ($1::text IS NULL OR customer_email = $1)
  AND ($2::text IS NULL OR decorator_email = $2)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookings, arg.OwnerEmail, arg.DecoratorEmail, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[BookingRow])
}

const countBookings = `
SELECT COUNT(*)
FROM bookings
WHERE ($1::text IS NULL OR customer_email = $1)
  AND ($2::text IS NULL OR decorator_email = $2)`

func (q *Queries) CountBookings(ctx context.Context, db DBTX, ownerEmail, decoratorEmail pgtype.Text) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countBookings, ownerEmail, decoratorEmail).Scan(&n)
	return n, err
}

type PatchBookingParams struct {
	ID             uuid.UUID
	Status         string
	DecoratorEmail pgtype.Text
	ExpectStatus   string
}

// patchBooking keeps the current decorator when none is supplied.
const patchBooking = `
UPDATE bookings
SET status = $2,
    decorator_email = COALESCE($3, decorator_email),
    updated_at = now()
WHERE id = $1 AND status = $4`

func (q *Queries) PatchBooking(ctx context.Context, db DBTX, arg PatchBookingParams) (int64, error) {
	tag, err := db.Exec(ctx, patchBooking, arg.ID, arg.Status, arg.DecoratorEmail, arg.ExpectStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1 AND status = $2`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID, expectStatus string) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id, expectStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
