//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// BookingFixture is a row inserted straight into storage, bypassing the
// booking flow so tests can start from any status.
type BookingFixture struct {
	CustomerEmail  string
	DecoratorEmail string
	Status         string
	ServiceID      string
	ServiceName    string
	PriceCents     int64
	Date           time.Time
}

func CreateTestBooking(t *testing.T, db DBLike, f BookingFixture) uuid.UUID {
	t.Helper()

	if f.Status == "" {
		f.Status = "pending"
	}
	if f.ServiceID == "" {
		f.ServiceID = "svc-" + uuid.NewString()[:8]
	}
	if f.ServiceName == "" {
		f.ServiceName = "Living Room Makeover"
	}
	if f.PriceCents == 0 {
		f.PriceCents = 50000
	}
	if f.Date.IsZero() {
		f.Date = time.Now().AddDate(0, 0, 7)
	}
	var decorator any
	if f.DecoratorEmail != "" {
		decorator = f.DecoratorEmail
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (
			customer_email, customer_name, service_id, service_name, decorator_email,
			status, date, slot, service_type, address, base_price_cents, price_cents, original_price_cents
		) VALUES ($1, 'Fixture Customer', $2, $3, $4, $5, $6, '10:00', 'on-site', '1 Fixture Street', $7, $7, $7)
		RETURNING id`,
		f.CustomerEmail, f.ServiceID, f.ServiceName, decorator, f.Status, f.Date, f.PriceCents,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
