package review

import (
	"time"

	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotEligible  = errs.New("booking is not eligible for review")
	ErrReviewAlreadyExists = errs.New("review already exists for this booking")
)

type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	serviceID string
	userEmail string
	userName  string
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(services *Services, bookingID uuid.UUID, serviceID string, reviewer user.Principal, ratingValue int, commentText string) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		bookingID: bookingID,
		serviceID: serviceID,
		userEmail: user.NormalizeEmail(reviewer.Email),
		userName:  reviewer.DisplayName,
		rating:    rating,
		comment:   comment,
		createdAt: services.Clock.Now(),
	}, nil
}

func ReconstructReview(id, bookingID uuid.UUID, serviceID, userEmail, userName string, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		bookingID: bookingID,
		serviceID: serviceID,
		userEmail: userEmail,
		userName:  userName,
		rating:    Rating{value: rating},
		comment:   Comment{text: comment},
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) ServiceID() string    { return r.serviceID }
func (r *Review) UserEmail() string    { return r.userEmail }
func (r *Review) UserName() string     { return r.userName }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
