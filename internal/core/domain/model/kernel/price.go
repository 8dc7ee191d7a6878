package kernel

import (
	"fmt"
	"math"

	"taza/internal/pkg/errs"
	"taza/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via the NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price represents a monetary amount in tenge offered or charged on an order.
// Price is an immutable value object; amounts must be finite and
// non-negative. The zero value is invalid and fails validation.
//
// Example:
//
//	price, err := kernel.NewPrice(4500)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 4500.00 ₸
type Price struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewPrice creates a Price from a raw amount. The amount must be a finite,
// non-negative number; zero is allowed so clients can ask for a free quote.
func NewPrice(value float64) (Price, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not a finite number", value))
	}
	if value < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", value))
	}

	return Price{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the raw amount in tenge.
func (p Price) Value() float64 {
	return p.value
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.value == other.value
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("%.2f ₸", p.value)
}

// Validate ensures the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
