package repository

import (
	"context"

	"styledecor/internal/domain/review"
	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	InsertReview(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertReviewParams) (uuid.UUID, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      pgquery.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db pgquery.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the unique booking_id constraint for one review per
// booking; a second attempt surfaces as KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	id, err := r.queries.InsertReview(ctx, r.db, converter.ReviewToInsertParams(rev))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}
