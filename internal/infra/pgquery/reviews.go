package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InsertReviewParams struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	ServiceID string
	UserEmail string
	UserName  string
	Rating    int32
	Comment   string
	CreatedAt pgtype.Timestamptz
}

const insertReview = `
INSERT INTO reviews (id, booking_id, service_id, user_email, user_name, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (q *Queries) InsertReview(ctx context.Context, db DBTX, arg InsertReviewParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, insertReview,
		arg.ID, arg.BookingID, arg.ServiceID, arg.UserEmail, arg.UserName, arg.Rating, arg.Comment, arg.CreatedAt,
	).Scan(&id)
	return id, err
}
