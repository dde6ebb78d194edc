package repository

import (
	"context"

	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository/converter"
	"styledecor/internal/usecase/shared"
)

type StatsQueries interface {
	GetBookingStats(ctx context.Context, db pgquery.DBTX) (pgquery.BookingStatsRow, error)
}

type StatsRepository struct {
	queries StatsQueries
	db      pgquery.DBTX
}

func NewStatsRepository(queries StatsQueries, db pgquery.DBTX) *StatsRepository {
	return &StatsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StatsRepository) BookingStats(ctx context.Context) (*shared.BookingStats, error) {
	row, err := r.queries.GetBookingStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking stats", err)
	}
	return converter.StatsRowToShared(row), nil
}
