package converter

import (
	"styledecor/internal/domain/message"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/pkg/pgconv"
)

func MessageToInsertParams(m *message.Message) pgquery.InsertMessageParams {
	return pgquery.InsertMessageParams{
		ID:          m.ID(),
		BookingID:   m.BookingID(),
		SenderEmail: m.SenderEmail(),
		SenderName:  m.SenderName(),
		Text:        m.Text(),
		CreatedAt:   pgconv.TimeToPgtype(m.Timestamp()),
	}
}

func MessageRowToDomain(row pgquery.MessageRow) *message.Message {
	return message.ReconstructMessage(
		row.ID,
		row.BookingID,
		row.SenderEmail,
		row.SenderName,
		row.Text,
		pgconv.TimeFromPgtype(row.CreatedAt),
		row.Seq,
		row.ReadBy,
	)
}
