//go:build unit || e2e

package builder

import (
	"time"

	"styledecor/internal/domain/review"
	reqdto "styledecor/internal/handler/dto/request"
	"styledecor/internal/pkg/clock"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID uuid.UUID
	ServiceID string
	Reviewer  *PrincipalBuilder
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		BookingID: uuid.New(),
		ServiceID: "svc-living-room",
		Reviewer:  NewPrincipalBuilder(),
		Rating:    5,
		Comment:   "The room looks wonderful",
		CreatedAt: time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	services := &review.Services{Clock: clock.NewMockClock(r.CreatedAt)}
	return review.NewReview(services, r.BookingID, r.ServiceID, r.Reviewer.Build(), r.Rating, r.Comment)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
