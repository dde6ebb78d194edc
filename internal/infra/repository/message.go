package repository

import (
	"context"

	"styledecor/internal/domain/message"
	"styledecor/internal/domain/user"
	"styledecor/internal/infra"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository/converter"
	"styledecor/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MessageQueries interface {
	InsertMessage(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertMessageParams) (uuid.UUID, error)
	GetMessageByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.MessageRow, error)
	ListMessagesByBooking(ctx context.Context, db pgquery.DBTX, bookingID uuid.UUID) ([]pgquery.MessageRow, error)
	MarkMessagesRead(ctx context.Context, db pgquery.DBTX, bookingID uuid.UUID, reader string, ids []string) (int64, error)
	CountUnreadByBookings(ctx context.Context, db pgquery.DBTX, bookingIDs []string, viewer string) ([]pgquery.UnreadCountRow, error)
}

type MessageRepository struct {
	queries MessageQueries
	db      pgquery.DBTX
}

func NewMessageRepository(queries MessageQueries, db pgquery.DBTX) *MessageRepository {
	return &MessageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*message.Message, error) {
	rows, err := r.queries.ListMessagesByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	out := make([]*message.Message, len(rows))
	for i, row := range rows {
		out[i] = converter.MessageRowToDomain(row)
	}
	return out, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	row, err := r.queries.GetMessageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find message by ID", err)
	}
	return converter.MessageRowToDomain(row), nil
}

func (r *MessageRepository) Create(ctx context.Context, m *message.Message) (uuid.UUID, error) {
	id, err := r.queries.InsertMessage(ctx, r.db, converter.MessageToInsertParams(m))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create message", err)
	}
	return id, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, bookingID uuid.UUID, viewer string, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkMessagesRead(ctx, r.db, bookingID, user.NormalizeEmail(viewer), uuidStrings(ids))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark messages read", err)
	}
	return n, nil
}

// UnreadCounts omits bookings with nothing unread.
func (r *MessageRepository) UnreadCounts(ctx context.Context, bookingIDs []uuid.UUID, viewer string) (map[uuid.UUID]int, error) {
	rows, err := r.queries.CountUnreadByBookings(ctx, r.db, uuidStrings(bookingIDs), user.NormalizeEmail(viewer))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count unread messages", err)
	}
	out := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		out[row.BookingID] = int(row.Unread)
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
