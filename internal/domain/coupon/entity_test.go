//go:build unit

package coupon_test

import (
	"testing"

	"styledecor/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog, err := coupon.NewCatalog(map[string]float64{"style20": 20, "WELCOME5": 5})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		raw      string
		wantCode coupon.Code
		wantPct  float64
		errIs    error
	}{
		{name: "exact code", raw: "STYLE20", wantCode: "STYLE20", wantPct: 20},
		{name: "lower case and padding are normalized", raw: "  style20 ", wantCode: "STYLE20", wantPct: 20},
		{name: "second entry", raw: "welcome5", wantCode: "WELCOME5", wantPct: 5},
		{name: "unknown code", raw: "SPRING50", errIs: coupon.ErrInvalidCoupon},
		{name: "malformed code", raw: "no spaces!", errIs: coupon.ErrInvalidCoupon},
		{name: "empty code", raw: "", errIs: coupon.ErrInvalidCoupon},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, pct, err := catalog.Lookup(tc.raw)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, code)
			assert.InDelta(t, tc.wantPct, pct.Value(), 1e-9)
		})
	}
}

func TestNewCatalog_RejectsBadEntries(t *testing.T) {
	_, err := coupon.NewCatalog(map[string]float64{"X": 10})
	require.ErrorIs(t, err, coupon.ErrInvalidCouponCode)

	_, err = coupon.NewCatalog(map[string]float64{"TOOMUCH": 120})
	require.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
}

func TestDefaultCatalog(t *testing.T) {
	_, pct, err := coupon.DefaultCatalog().Lookup("STYLE20")
	require.NoError(t, err)
	assert.InDelta(t, 20.0, pct.Value(), 1e-9)
}
