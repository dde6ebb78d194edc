package pricing

import (
	"math"

	"styledecor/internal/pkg/errs"
)

var ErrInvalidDiscount = errs.New("discount percent must be between 0 and 100")

// basis points per percent; percent is carried as an integer number of
// hundredths so that the discount can be applied without float drift.
const bpPerPercent = 100

type Total struct {
	OriginalPrice Money
	Price         Money
}

func SumAddOns(addOns []AddOn) Money {
	var sum Money
	for _, a := range addOns {
		sum = sum.Add(a.Price)
	}
	return sum
}

// ApplyDiscount removes percent% from amount, rounding half-up to the cent.
func ApplyDiscount(amount Money, percent float64) (Money, error) {
	if err := ValidatePercent(percent); err != nil {
		return Money{}, err
	}
	bp := int64(math.Round(percent * bpPerPercent))
	const full = 100 * bpPerPercent
	num := amount.cents * (full - bp)
	return Money{cents: (num + full/2) / full}, nil
}

// ComputeTotal adds the add-ons onto the base and discounts the sum once.
func ComputeTotal(base Money, addOns []AddOn, percent float64) (Total, error) {
	original := base.Add(SumAddOns(addOns))
	price, err := ApplyDiscount(original, percent)
	if err != nil {
		return Total{}, err
	}
	return Total{OriginalPrice: original, Price: price}, nil
}

func ValidatePercent(percent float64) error {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	return nil
}
