package converter

import (
	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/domain/wishlist"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/pkg/pgconv"
)

func WishlistItemToRow(item *wishlist.Item) pgquery.WishlistRow {
	s := item.Service()
	return pgquery.WishlistRow{
		ID:             item.ID(),
		OwnerEmail:     item.OwnerEmail(),
		ServiceID:      s.ID,
		ServiceName:    s.Name,
		ServiceImage:   s.Image,
		BasePriceCents: s.BasePrice.Cents(),
		CreatedAt:      pgconv.TimeToPgtype(item.CreatedAt()),
	}
}

func WishlistRowToDomain(row pgquery.WishlistRow) *wishlist.Item {
	return wishlist.ReconstructItem(row.ID, row.OwnerEmail, booking.ServiceSnapshot{
		ID:        row.ServiceID,
		Name:      row.ServiceName,
		Image:     row.ServiceImage,
		BasePrice: pricing.NewMoney(row.BasePriceCents),
	}, pgconv.TimeFromPgtype(row.CreatedAt))
}
