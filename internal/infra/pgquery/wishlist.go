package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type WishlistRow struct {
	ID             uuid.UUID          `db:"id"`
	OwnerEmail     string             `db:"owner_email"`
	ServiceID      string             `db:"service_id"`
	ServiceName    string             `db:"service_name"`
	ServiceImage   string             `db:"service_image"`
	BasePriceCents int64              `db:"base_price_cents"`
	CreatedAt      pgtype.Timestamptz `db:"created_at"`
}

const listWishlistByOwner = `
SELECT id, owner_email, service_id, service_name, service_image, base_price_cents, created_at
FROM wishlist_items
WHERE owner_email = $1
ORDER BY created_at DESC, id`

func (q *Queries) ListWishlistByOwner(ctx context.Context, db DBTX, ownerEmail string) ([]WishlistRow, error) {
	rows, err := db.Query(ctx, listWishlistByOwner, ownerEmail)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[WishlistRow])
}

const insertWishlistItem = `
INSERT INTO wishlist_items (id, owner_email, service_id, service_name, service_image, base_price_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (q *Queries) InsertWishlistItem(ctx context.Context, db DBTX, arg WishlistRow) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, insertWishlistItem,
		arg.ID, arg.OwnerEmail, arg.ServiceID, arg.ServiceName, arg.ServiceImage, arg.BasePriceCents, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const deleteWishlistItem = `DELETE FROM wishlist_items WHERE id = $1 AND owner_email = $2`

func (q *Queries) DeleteWishlistItem(ctx context.Context, db DBTX, id uuid.UUID, ownerEmail string) (int64, error) {
	tag, err := db.Exec(ctx, deleteWishlistItem, id, ownerEmail)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
