package pricing

import (
	"fmt"
	"math"

	"taza/internal/pkg/errs"
)

const (
	// ProtectionThreshold is the Taza Index value at which the platform
	// enables enhanced dispute protection for the order.
	ProtectionThreshold = 130

	// DisplayIndexCap bounds the index shown in client UIs. The raw index
	// is unbounded above.
	DisplayIndexCap = 150

	// lowBandDiscount positions the recommended price at the lower edge of
	// the fair band for underpriced offers.
	lowBandDiscount = 0.9
)

// Evaluation is the result of comparing an offered price against the category
// market average. It is a pure snapshot: identical inputs always produce an
// identical Evaluation, and nothing recomputes it behind the caller's back.
type Evaluation struct {
	// Index is the price-to-average ratio scaled to 100. Values above 100
	// mean the offer sits above the market. Never negative.
	Index int

	// DeltaPercent is the signed relative deviation from the market
	// average, rounded to the nearest percent. Sole driver of the band.
	DeltaPercent int

	// Band is the categorical fairness classification.
	Band Band

	// RecommendedPrice is the market average adjusted toward the fair band
	// when the offer sits below it. Above-market offers are not corrected
	// downward.
	RecommendedPrice float64

	// ProtectionEnabled is set when Index crosses ProtectionThreshold,
	// signaling enhanced dispute protection for premium orders.
	ProtectionEnabled bool
}

// DisplayIndex returns the index capped at DisplayIndexCap for UI rendering.
func (e Evaluation) DisplayIndex() int {
	if e.Index > DisplayIndexCap {
		return DisplayIndexCap
	}
	return e.Index
}

// Evaluate computes the Taza Index evaluation for an offered price against
// the category market average.
//
// The market average must be positive: callers are responsible for
// substituting a fallback average for empty markets, the evaluator does not
// silently default. The price must be non-negative. Both must be finite.
//
// Example:
//
//	eval, err := pricing.Evaluate(600, 1000)
//	if err != nil {
//	    // invalid inputs
//	}
//	// eval.DeltaPercent == -40, eval.Band == pricing.TooLow
func Evaluate(price, marketAverage float64) (Evaluation, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return Evaluation{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not a valid price", price))
	}
	if math.IsNaN(marketAverage) || math.IsInf(marketAverage, 0) || marketAverage <= 0 {
		return Evaluation{}, errs.NewValueIsInvalidErrorWithCause("marketAverage",
			fmt.Errorf("%v is not greater than 0", marketAverage))
	}

	deltaPercent := int(math.Round((price - marketAverage) / marketAverage * 100))
	band := bandForDelta(deltaPercent)

	index := int(math.Round(price / marketAverage * 100))
	if index < 0 {
		index = 0
	}

	recommended := marketAverage
	if band == TooLow || band == ModeratelyLow {
		recommended = marketAverage * lowBandDiscount
	}

	return Evaluation{
		Index:             index,
		DeltaPercent:      deltaPercent,
		Band:              band,
		RecommendedPrice:  recommended,
		ProtectionEnabled: index >= ProtectionThreshold,
	}, nil
}
