package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/infra"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BookingCache is a read-through decorator over a BookingRepository.
// Single bookings are cached by id. Lists are cached under a generation
// number that every write bumps, which drops all cached pages at once.
// Cache failures are logged and never fail a read.
type BookingCache struct {
	next   shared.BookingRepository
	store  Store
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

func NewBookingCache(next shared.BookingRepository, store Store, ttl time.Duration, prefix string, logger *slog.Logger) *BookingCache {
	return &BookingCache{
		next:   next,
		store:  store,
		ttl:    ttl,
		prefix: prefix,
		logger: logger,
	}
}

func (c *BookingCache) bookingKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:booking:%s", c.prefix, id)
}

func (c *BookingCache) generationKey() string {
	return c.prefix + ":bookings:gen"
}

func (c *BookingCache) listKey(gen int64, f shared.BookingFilter) string {
	return fmt.Sprintf("%s:bookings:list:%d:o=%s:d=%s:p=%d:l=%d",
		c.prefix, gen, f.OwnerEmail, f.DecoratorEmail, f.Page, f.Limit)
}

func (c *BookingCache) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	key := c.bookingKey(id)
	if raw, err := c.store.Get(ctx, key).Bytes(); err == nil {
		var rec bookingRecord
		if jerr := json.Unmarshal(raw, &rec); jerr == nil {
			return rec.toDomain(), nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.warn("cache read failed", key, err)
	}

	b, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, toRecord(b))
	return b, nil
}

func (c *BookingCache) List(ctx context.Context, f shared.BookingFilter) (shared.BookingPage, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.warn("cache generation read failed", c.generationKey(), err)
		return c.next.List(ctx, f)
	}

	key := c.listKey(gen, f)
	if raw, err := c.store.Get(ctx, key).Bytes(); err == nil {
		var rec pageRecord
		if jerr := json.Unmarshal(raw, &rec); jerr == nil {
			items := make([]*booking.Booking, len(rec.Items))
			for i, r := range rec.Items {
				items[i] = r.toDomain()
			}
			return shared.BookingPage{Items: items, Total: rec.Total}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.warn("cache read failed", key, err)
	}

	page, err := c.next.List(ctx, f)
	if err != nil {
		return shared.BookingPage{}, err
	}
	rec := pageRecord{Items: make([]bookingRecord, len(page.Items)), Total: page.Total}
	for i, b := range page.Items {
		rec.Items[i] = toRecord(b)
	}
	c.put(ctx, key, rec)
	return page, nil
}

func (c *BookingCache) Create(ctx context.Context, d *booking.Draft) (uuid.UUID, error) {
	id, err := c.next.Create(ctx, d)
	if err != nil {
		return uuid.Nil, err
	}
	c.bumpGeneration(ctx)
	return id, nil
}

// Patch invalidates even when nothing matched; a no-op write means the
// cached copy is likely stale.
func (c *BookingCache) Patch(ctx context.Context, id uuid.UUID, p shared.BookingPatch) (int64, error) {
	n, err := c.next.Patch(ctx, id, p)
	if ierr := c.InvalidateBooking(ctx, id); ierr != nil {
		c.warn("cache invalidation failed", c.bookingKey(id), ierr)
	}
	return n, err
}

func (c *BookingCache) Remove(ctx context.Context, id uuid.UUID, expect booking.Status) (int64, error) {
	n, err := c.next.Remove(ctx, id, expect)
	if ierr := c.InvalidateBooking(ctx, id); ierr != nil {
		c.warn("cache invalidation failed", c.bookingKey(id), ierr)
	}
	return n, err
}

func (c *BookingCache) InvalidateBooking(ctx context.Context, id uuid.UUID) error {
	if err := c.store.Del(ctx, c.bookingKey(id)).Err(); err != nil {
		return err
	}
	return c.store.Incr(ctx, c.generationKey()).Err()
}

func (c *BookingCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.store.Get(ctx, c.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *BookingCache) bumpGeneration(ctx context.Context) {
	if err := c.store.Incr(ctx, c.generationKey()).Err(); err != nil {
		c.warn("cache generation bump failed", c.generationKey(), err)
	}
}

func (c *BookingCache) put(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.warn("cache encode failed", key, err)
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.warn("cache write failed", key, err)
	}
}

func (c *BookingCache) warn(msg, key string, err error) {
	c.logger.Warn(msg, "kind", infra.KindCacheFailure, "key", key, "error", err)
}
