//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository"
	"styledecor/internal/usecase/shared"
	repositorymock "styledecor/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsRepository_BookingStats(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row maps to stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockStatsQueries(ctrl)
		db := &mockDBTX{}
		queries.EXPECT().GetBookingStats(ctx, db).
			Return(pgquery.BookingStatsRow{TotalBookings: 9, PaidBookings: 2, RevenueCents: 100800}, nil)

		stats, err := repository.NewStatsRepository(queries, db).BookingStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(9), stats.TotalBookings)
		assert.Equal(t, int64(2), stats.PaidBookings)
		assert.Equal(t, int64(100800), stats.Revenue.Cents())
	})

	t.Run("success: empty tables give zero revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockStatsQueries(ctrl)
		db := &mockDBTX{}
		queries.EXPECT().GetBookingStats(ctx, db).Return(pgquery.BookingStatsRow{}, nil)

		stats, err := repository.NewStatsRepository(queries, db).BookingStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, shared.BookingStats{}, *stats)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockStatsQueries(ctrl)
		db := &mockDBTX{}
		queries.EXPECT().GetBookingStats(ctx, db).Return(pgquery.BookingStatsRow{}, errors.New("connection reset"))

		stats, err := repository.NewStatsRepository(queries, db).BookingStats(ctx)

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
