package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRow struct {
	ID            uuid.UUID          `db:"id"`
	BookingID     uuid.UUID          `db:"booking_id"`
	SessionID     string             `db:"session_id"`
	TransactionID string             `db:"transaction_id"`
	TrackingID    string             `db:"tracking_id"`
	CustomerEmail string             `db:"customer_email"`
	AmountCents   int64              `db:"amount_cents"`
	Currency      string             `db:"currency"`
	PaidAt        pgtype.Timestamptz `db:"paid_at"`
}

const insertPayment = `
INSERT INTO payments (id, booking_id, session_id, transaction_id, tracking_id, customer_email, amount_cents, currency, paid_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg PaymentRow) error {
	_, err := db.Exec(ctx, insertPayment,
		arg.ID, arg.BookingID, arg.SessionID, arg.TransactionID, arg.TrackingID,
		arg.CustomerEmail, arg.AmountCents, arg.Currency, arg.PaidAt,
	)
	return err
}

const getPaymentBySession = `
SELECT id, booking_id, session_id, transaction_id, tracking_id, customer_email, amount_cents, currency, paid_at
FROM payments WHERE session_id = $1`

func (q *Queries) GetPaymentBySession(ctx context.Context, db DBTX, sessionID string) (PaymentRow, error) {
	rows, err := db.Query(ctx, getPaymentBySession, sessionID)
	if err != nil {
		return PaymentRow{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[PaymentRow])
}
