package response

import (
	"time"

	"styledecor/internal/domain/wishlist"

	"github.com/google/uuid"
)

type WishlistItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceID    string    `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	ServiceImage string    `json:"serviceImage,omitempty"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromWishlist(items []*wishlist.Item) []*WishlistItemResponse {
	res := make([]*WishlistItemResponse, len(items))
	for i, it := range items {
		svc := it.Service()
		res[i] = &WishlistItemResponse{
			ID:           it.ID(),
			ServiceID:    svc.ID,
			ServiceName:  svc.Name,
			ServiceImage: svc.Image,
			Price:        svc.BasePrice.Amount(),
			CreatedAt:    it.CreatedAt(),
		}
	}
	return res
}
