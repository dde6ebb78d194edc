package repository

import (
	"context"

	"styledecor/internal/domain/user"
	"styledecor/internal/domain/wishlist"
	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type WishlistQueries interface {
	ListWishlistByOwner(ctx context.Context, db pgquery.DBTX, ownerEmail string) ([]pgquery.WishlistRow, error)
	InsertWishlistItem(ctx context.Context, db pgquery.DBTX, arg pgquery.WishlistRow) (uuid.UUID, error)
	DeleteWishlistItem(ctx context.Context, db pgquery.DBTX, id uuid.UUID, ownerEmail string) (int64, error)
}

type WishlistRepository struct {
	queries WishlistQueries
	db      pgquery.DBTX
}

func NewWishlistRepository(queries WishlistQueries, db pgquery.DBTX) *WishlistRepository {
	return &WishlistRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WishlistRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*wishlist.Item, error) {
	rows, err := r.queries.ListWishlistByOwner(ctx, r.db, user.NormalizeEmail(ownerEmail))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist", err)
	}
	items := make([]*wishlist.Item, len(rows))
	for i, row := range rows {
		items[i] = converter.WishlistRowToDomain(row)
	}
	return items, nil
}

func (r *WishlistRepository) Create(ctx context.Context, item *wishlist.Item) (uuid.UUID, error) {
	id, err := r.queries.InsertWishlistItem(ctx, r.db, converter.WishlistItemToRow(item))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add wishlist item", err)
	}
	return id, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, id uuid.UUID, ownerEmail string) (int64, error) {
	n, err := r.queries.DeleteWishlistItem(ctx, r.db, id, user.NormalizeEmail(ownerEmail))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to remove wishlist item", err)
	}
	return n, nil
}
