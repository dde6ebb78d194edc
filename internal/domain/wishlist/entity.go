package wishlist

import (
	"strings"
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidItem   = errs.New("wishlist item needs a service")
	ErrAlreadyListed = errs.New("service is already in the wishlist")
)

// Item is a saved service for later booking. The service snapshot is
// frozen at save time like a booking's.
type Item struct {
	id         uuid.UUID
	ownerEmail string
	service    booking.ServiceSnapshot
	createdAt  time.Time
}

func NewItem(owner user.Principal, service booking.ServiceSnapshot, now time.Time) (*Item, error) {
	if strings.TrimSpace(service.ID) == "" || strings.TrimSpace(service.Name) == "" {
		return nil, ErrInvalidItem
	}
	return &Item{
		id:         uuid.New(),
		ownerEmail: user.NormalizeEmail(owner.Email),
		service:    service,
		createdAt:  now,
	}, nil
}

func ReconstructItem(id uuid.UUID, ownerEmail string, service booking.ServiceSnapshot, createdAt time.Time) *Item {
	return &Item{id: id, ownerEmail: ownerEmail, service: service, createdAt: createdAt}
}

func (i *Item) ID() uuid.UUID                    { return i.id }
func (i *Item) OwnerEmail() string               { return i.ownerEmail }
func (i *Item) Service() booking.ServiceSnapshot { return i.service }
func (i *Item) CreatedAt() time.Time             { return i.createdAt }
