package repository

import (
	"context"

	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository/converter"
	"styledecor/internal/pkg/pgconv"
	"styledecor/internal/usecase/shared"
)

type PaymentQueries interface {
	InsertPayment(ctx context.Context, db pgquery.DBTX, arg pgquery.PaymentRow) error
	GetPaymentBySession(ctx context.Context, db pgquery.DBTX, sessionID string) (pgquery.PaymentRow, error)
}

type PaymentRepository struct {
	queries PaymentQueries
	db      pgquery.DBTX
}

func NewPaymentRepository(queries PaymentQueries, db pgquery.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Record(ctx context.Context, p *shared.Payment) error {
	if err := r.queries.InsertPayment(ctx, r.db, converter.PaymentToRow(p)); err != nil {
		return infra.WrapRepoErr("failed to record payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindBySession(ctx context.Context, sessionID string) (*shared.Payment, error) {
	row, err := r.queries.GetPaymentBySession(ctx, r.db, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by session", err)
	}
	return converter.PaymentRowToShared(row), nil
}
