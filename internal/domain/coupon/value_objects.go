package coupon

import (
	"regexp"
	"strings"
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Percent is a validated discount percentage in [0,100].
type Percent struct {
	value float64
}

func NewPercent(v float64) (Percent, error) {
	if v < 0 || v > 100 {
		return Percent{}, ErrInvalidDiscountPercent
	}
	return Percent{value: v}, nil
}

func (p Percent) Value() float64 {
	return p.value
}
