package coupon

import (
	"errors"
	"fmt"

	"styledecor/internal/pkg/errs"
)

var (
	ErrInvalidCoupon          = errs.New("invalid coupon")
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

// Catalog is a fixed code to percent lookup. Coupons carry no validity
// window or usage limits.
type Catalog struct {
	codes map[Code]Percent
}

func NewCatalog(entries map[string]float64) (*Catalog, error) {
	codes := make(map[Code]Percent, len(entries))
	for raw, pct := range entries {
		code, err := NewCouponCode(raw)
		if err != nil {
			return nil, fmt.Errorf("coupon %q: %w", raw, err)
		}
		p, err := NewPercent(pct)
		if err != nil {
			return nil, fmt.Errorf("coupon %q: %w", raw, err)
		}
		codes[code] = p
	}
	return &Catalog{codes: codes}, nil
}

func DefaultCatalog() *Catalog {
	return &Catalog{codes: map[Code]Percent{"STYLE20": {value: 20}}}
}

// Lookup resolves raw to its percentage. Unknown and malformed codes both
// yield ErrInvalidCoupon.
func (c *Catalog) Lookup(raw string) (Code, Percent, error) {
	code, err := NewCouponCode(raw)
	if err != nil {
		return "", Percent{}, errs.Wrapf(ErrInvalidCoupon, "malformed coupon %q", raw)
	}
	p, ok := c.codes[code]
	if !ok {
		return "", Percent{}, errs.Wrapf(ErrInvalidCoupon, "unknown coupon %q", code)
	}
	return code, p, nil
}
