//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/wishlist"
	"styledecor/internal/infra"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/usecase"
	"styledecor/tests/common/builder"
	sharedmock "styledecor/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWishlistUseCase_Add(t *testing.T) {
	customer := builder.NewPrincipalBuilder().Build()
	service := builder.NewBookingBuilder().Service()

	tests := []struct {
		name    string
		service booking.ServiceSnapshot
		setup   func(repo *sharedmock.MockWishlistRepository)
		wantErr error
	}{
		{
			name:    "saved",
			service: service,
			setup: func(repo *sharedmock.MockWishlistRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *wishlist.Item) (uuid.UUID, error) {
						assert.Equal(t, customer.Email, item.OwnerEmail())
						assert.Equal(t, testNow, item.CreatedAt())
						return item.ID(), nil
					})
			},
		},
		{
			name:    "already listed",
			service: service,
			setup: func(repo *sharedmock.MockWishlistRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("wishlist item exists", errors.New("unique"), infra.KindDuplicateKey))
			},
			wantErr: wishlist.ErrAlreadyListed,
		},
		{
			name:    "service without id",
			service: booking.ServiceSnapshot{Name: "Lights"},
			setup:   func(*sharedmock.MockWishlistRepository) {},
			wantErr: wishlist.ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := sharedmock.NewMockWishlistRepository(ctrl)
			tt.setup(repo)
			uc := usecase.NewWishlistUseCase(repo, clock.NewMockClock(testNow))

			id, err := uc.Add(context.Background(), customer, tt.service)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
		})
	}
}

func TestWishlistUseCase_Remove(t *testing.T) {
	customer := builder.NewPrincipalBuilder().Build()
	id := uuid.New()

	t.Run("removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockWishlistRepository(ctrl)
		repo.EXPECT().Remove(gomock.Any(), id, customer.Email).Return(int64(1), nil)

		n, err := usecase.NewWishlistUseCase(repo, clock.NewMockClock(testNow)).Remove(context.Background(), customer, id)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("not owned or missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockWishlistRepository(ctrl)
		repo.EXPECT().Remove(gomock.Any(), id, customer.Email).Return(int64(0), nil)

		_, err := usecase.NewWishlistUseCase(repo, clock.NewMockClock(testNow)).Remove(context.Background(), customer, id)

		require.ErrorIs(t, err, usecase.ErrWishlistItemNotFound)
	})
}
