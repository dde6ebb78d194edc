package usecase

import (
	"context"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/internal/domain/wishlist"
	"styledecor/internal/infra"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishlistUseCase interface {
	List(ctx context.Context, actor user.Principal) ([]*wishlist.Item, error)
	Add(ctx context.Context, actor user.Principal, service booking.ServiceSnapshot) (uuid.UUID, error)
	Remove(ctx context.Context, actor user.Principal, id uuid.UUID) (int64, error)
}

type wishlistUseCaseImpl struct {
	repo  shared.WishlistRepository
	clock clock.Clock
}

func NewWishlistUseCase(repo shared.WishlistRepository, clk clock.Clock) WishlistUseCase {
	return &wishlistUseCaseImpl{repo: repo, clock: clk}
}

func (uc *wishlistUseCaseImpl) List(ctx context.Context, actor user.Principal) ([]*wishlist.Item, error) {
	items, err := uc.repo.ListByOwner(ctx, actor.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list wishlist")
	}
	return items, nil
}

func (uc *wishlistUseCaseImpl) Add(ctx context.Context, actor user.Principal, service booking.ServiceSnapshot) (uuid.UUID, error) {
	item, err := wishlist.NewItem(actor, service, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uc.repo.Create(ctx, item)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Wrapf(wishlist.ErrAlreadyListed, "service %s", service.ID)
		}
		return uuid.Nil, errs.Wrap(err, "failed to add wishlist item")
	}
	return id, nil
}

// Remove is owner-scoped; another customer's item reads as not found.
func (uc *wishlistUseCaseImpl) Remove(ctx context.Context, actor user.Principal, id uuid.UUID) (int64, error) {
	n, err := uc.repo.Remove(ctx, id, actor.Email)
	if err != nil {
		return 0, errs.Wrap(err, "failed to remove wishlist item")
	}
	if n == 0 {
		return 0, errs.Wrapf(ErrWishlistItemNotFound, "item %s", id)
	}
	return n, nil
}
