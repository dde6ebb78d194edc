package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/errs"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
)

// bookingCore holds what every role controller needs: the mutate then
// refetch cycle, live unread decoration, and event publication.
type bookingCore struct {
	bookings   shared.BookingRepository
	messages   shared.MessageRepository
	events     shared.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
	pagination Pagination
}

func (c *bookingCore) load(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, mapBookingErr(err, id)
	}
	return b, nil
}

// refetch reads the booking after a write. A missing booking is not an
// error here: it is what a lost delete race looks like.
func (c *bookingCore) refetch(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := c.load(ctx, id)
	if err != nil {
		if errs.Is(err, ErrBookingNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (c *bookingCore) list(ctx context.Context, viewer user.Principal, f shared.BookingFilter) (*ListResult, error) {
	f.Page, f.Limit = c.pagination.normalize(f.Page, f.Limit)

	page, err := c.bookings.List(ctx, f)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	ids := make([]uuid.UUID, len(page.Items))
	for i, b := range page.Items {
		ids[i] = b.ID()
	}
	unread := map[uuid.UUID]int{}
	if len(ids) > 0 {
		unread, err = c.messages.UnreadCounts(ctx, ids, viewer.Email)
		if err != nil {
			return nil, errs.Wrap(err, "failed to count unread messages")
		}
	}

	items := make([]BookingView, len(page.Items))
	for i, b := range page.Items {
		items[i] = BookingView{Booking: b, UnreadCount: unread[b.ID()]}
	}
	return &ListResult{
		Items:     items,
		Total:     page.Total,
		Page:      f.Page,
		Limit:     f.Limit,
		PageCount: page.PageCount(f.Limit),
	}, nil
}

type transitionInput struct {
	Op             string
	Next           booking.Status
	DecoratorEmail string
	Override       bool
}

// transition checks legality against the freshest read, patches with a
// compare-and-set on that status, and refetches.
func (c *bookingCore) transition(ctx context.Context, actor user.Principal, id uuid.UUID, in transitionInput) (*TransitionResult, error) {
	current, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	from := current.Status()
	if err := booking.CheckTransition(from, in.Next, actor, current, in.DecoratorEmail); err != nil {
		return nil, err
	}

	modified, err := c.bookings.Patch(ctx, id, shared.BookingPatch{
		Status:         in.Next,
		DecoratorEmail: in.DecoratorEmail,
		ExpectStatus:   from,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "failed to patch booking %s", id)
	}

	fresh, err := c.refetch(ctx, id)
	if err != nil {
		return nil, err
	}
	result := &TransitionResult{ModifiedCount: modified, Booking: fresh}
	if modified == 0 {
		return result, &NoOpWriteWarning{Op: in.Op, BookingID: id, Current: fresh}
	}

	if w := c.publish(ctx, shared.StatusChangedEvent{
		BookingID:      id,
		From:           from,
		To:             in.Next,
		ActorEmail:     actor.Email,
		ActorRole:      actor.Role.String(),
		DecoratorEmail: in.DecoratorEmail,
		Override:       in.Override,
		OccurredAt:     c.clock.Now(),
	}); w != "" {
		result.Warnings = append(result.Warnings, w)
	}
	return result, nil
}

// publish never fails the caller; a failed publish comes back as a warning.
func (c *bookingCore) publish(ctx context.Context, ev shared.StatusChangedEvent) string {
	if err := c.events.PublishStatusChanged(ctx, ev); err != nil {
		c.logger.Warn("failed to publish status event",
			"booking_id", ev.BookingID,
			"to", ev.To,
			"error", err)
		return fmt.Sprintf("status event not published: %v", err)
	}
	return ""
}
