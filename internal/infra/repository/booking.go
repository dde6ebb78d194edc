package repository

import (
	"context"
	"errors"

	"styledecor/internal/domain/booking"
	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository/converter"
	"styledecor/internal/pkg/pgconv"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingQueries interface {
	InsertBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertBookingParams) (uuid.UUID, error)
	GetBookingByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.BookingRow, error)
	ListBookings(ctx context.Context, db pgquery.DBTX, arg pgquery.ListBookingsParams) ([]pgquery.BookingRow, error)
	CountBookings(ctx context.Context, db pgquery.DBTX, ownerEmail, decoratorEmail pgtype.Text) (int64, error)
	PatchBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.PatchBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db pgquery.DBTX, id uuid.UUID, expectStatus string) (int64, error)
}

// txBeginner is satisfied by the pool but not by an open transaction.
type txBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, d *booking.Draft) (uuid.UUID, error) {
	params, err := converter.DraftToInsertParams(d)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking add-ons", err, infra.KindDBFailure)
	}
	id, err := r.queries.InsertBooking(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingRowToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

// List reads the page and the total in one read-only snapshot so that
// total always agrees with the items.
func (r *BookingRepository) List(ctx context.Context, f shared.BookingFilter) (shared.BookingPage, error) {
	var page shared.BookingPage
	err := r.readSnapshot(ctx, func(db pgquery.DBTX) error {
		owner := pgconv.TextFromString(f.OwnerEmail)
		decorator := pgconv.TextFromString(f.DecoratorEmail)

		rows, err := r.queries.ListBookings(ctx, db, pgquery.ListBookingsParams{
			OwnerEmail:     owner,
			DecoratorEmail: decorator,
			Limit:          int32(f.Limit),    // #nosec G115 -- bounded by pagination config
			Offset:         int32(f.Offset()), // #nosec G115 -- bounded by pagination config
		})
		if err != nil {
			return err
		}
		total, err := r.queries.CountBookings(ctx, db, owner, decorator)
		if err != nil {
			return err
		}

		page.Total = total
		page.Items = make([]*booking.Booking, 0, len(rows))
		for _, row := range rows {
			b, err := converter.BookingRowToDomain(row)
			if err != nil {
				return err
			}
			page.Items = append(page.Items, b)
		}
		return nil
	})
	if err != nil {
		return shared.BookingPage{}, infra.WrapRepoErr("failed to list bookings", err)
	}
	return page, nil
}

func (r *BookingRepository) readSnapshot(ctx context.Context, fn func(db pgquery.DBTX) error) error {
	beginner, ok := r.db.(txBeginner)
	if !ok {
		return fn(r.db)
	}
	tx, err := beginner.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			infra.LogRollbackFailure(rbErr)
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BookingRepository) Patch(ctx context.Context, id uuid.UUID, p shared.BookingPatch) (int64, error) {
	n, err := r.queries.PatchBooking(ctx, r.db, pgquery.PatchBookingParams{
		ID:             id,
		Status:         p.Status.String(),
		DecoratorEmail: pgconv.TextFromString(p.DecoratorEmail),
		ExpectStatus:   p.ExpectStatus.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to patch booking", err)
	}
	return n, nil
}

func (r *BookingRepository) Remove(ctx context.Context, id uuid.UUID, expect booking.Status) (int64, error) {
	n, err := r.queries.DeleteBooking(ctx, r.db, id, expect.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n, nil
}
