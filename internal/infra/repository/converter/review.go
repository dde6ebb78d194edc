package converter

import (
	"styledecor/internal/domain/review"
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/pkg/pgconv"
)

func ReviewToInsertParams(r *review.Review) pgquery.InsertReviewParams {
	return pgquery.InsertReviewParams{
		ID:        r.ID(),
		BookingID: r.BookingID(),
		ServiceID: r.ServiceID(),
		UserEmail: r.UserEmail(),
		UserName:  r.UserName(),
		Rating:    int32(r.Rating().Value()), // #nosec G115 -- rating is validated to 1..5
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
