package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageRow struct {
	ID          uuid.UUID          `db:"id"`
	Seq         int64              `db:"seq"`
	BookingID   uuid.UUID          `db:"booking_id"`
	SenderEmail string             `db:"sender_email"`
	SenderName  string             `db:"sender_name"`
	Text        string             `db:"text"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	ReadBy      []string           `db:"read_by"`
}

const messageSelect = `
SELECT m.id, m.seq, m.booking_id, m.sender_email, m.sender_name, m.text, m.created_at,
       COALESCE(array_agg(r.reader_email ORDER BY r.reader_email) FILTER (WHERE r.reader_email IS NOT NULL), '{}')::text[] AS read_by
FROM messages m
LEFT JOIN message_reads r ON r.message_id = m.id`

type InsertMessageParams struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	SenderEmail string
	SenderName  string
	Text        string
	CreatedAt   pgtype.Timestamptz
}

const insertMessage = `
INSERT INTO messages (id, booking_id, sender_email, sender_name, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (q *Queries) InsertMessage(ctx context.Context, db DBTX, arg InsertMessageParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, insertMessage,
		arg.ID, arg.BookingID, arg.SenderEmail, arg.SenderName, arg.Text, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getMessageByID = messageSelect + `
WHERE m.id = $1
GROUP BY m.id`

func (q *Queries) GetMessageByID(ctx context.Context, db DBTX, id uuid.UUID) (MessageRow, error) {
	rows, err := db.Query(ctx, getMessageByID, id)
	if err != nil {
		return MessageRow{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[MessageRow])
}

// seq breaks timestamp ties in insertion order.
const listMessagesByBooking = messageSelect + `
WHERE m.booking_id = $1
GROUP BY m.id
ORDER BY m.created_at ASC, m.seq ASC`

func (q *Queries) ListMessagesByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]MessageRow, error) {
	rows, err := db.Query(ctx, listMessagesByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[MessageRow])
}

const markMessagesRead = `
INSERT INTO message_reads (message_id, reader_email)
SELECT m.id, $2 FROM messages m
WHERE m.booking_id = $1 AND m.id = ANY($3::uuid[]) AND m.sender_email <> $2
ON CONFLICT (message_id, reader_email) DO NOTHING`

func (q *Queries) MarkMessagesRead(ctx context.Context, db DBTX, bookingID uuid.UUID, reader string, ids []string) (int64, error) {
	tag, err := db.Exec(ctx, markMessagesRead, bookingID, reader, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UnreadCountRow struct {
	BookingID uuid.UUID `db:"booking_id"`
	Unread    int64     `db:"unread"`
}

const countUnreadByBookings = `
SELECT m.booking_id, COUNT(*) AS unread
FROM messages m
WHERE m.booking_id = ANY($1::uuid[])
  AND m.sender_email <> $2
  AND NOT EXISTS (
    SELECT 1 FROM message_reads r WHERE r.message_id = m.id AND r.reader_email = $2
  )
GROUP BY m.booking_id`

func (q *Queries) CountUnreadByBookings(ctx context.Context, db DBTX, bookingIDs []string, viewer string) ([]UnreadCountRow, error) {
	rows, err := db.Query(ctx, countUnreadByBookings, bookingIDs, viewer)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UnreadCountRow])
}
