package services

import (
	"errors"

	"taza/internal/core/domain/model/offer"
	"taza/internal/core/domain/model/pricing"
)

// ErrNoOffersToSelect is returned when no pending offer is available for
// recommendation. This occurs when the slice is empty or every offer in it
// was already accepted or superseded.
var ErrNoOffersToSelect = errors.New("no offers to select")

// OfferSelector is a domain service that picks the offer worth recommending
// to the client from the bids placed on an order.
//
// Business rules:
//   - only pending offers compete
//   - a fairly priced bid beats a mispriced one regardless of amount
//   - among equally fair bids the cheaper one wins
//   - ties go to the earliest bid
type OfferSelector struct{}

// NewOfferSelector creates a new OfferSelector instance.
func NewOfferSelector() OfferSelector {
	return OfferSelector{}
}

// SelectBest evaluates every pending offer against the market average for
// the order's category and returns the most recommendable one.
//
// Returns ErrNoOffersToSelect when nothing is pending, or an evaluation
// error when the market average is unusable.
func (s OfferSelector) SelectBest(offers []*offer.Offer, marketAverage float64) (*offer.Offer, error) {
	var (
		best           *offer.Offer
		bestEvaluation pricing.Evaluation
	)

	for _, o := range offers {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if o.Status() != offer.Pending {
			continue
		}

		evaluation, err := pricing.Evaluate(o.ProposedPrice().Value(), marketAverage)
		if err != nil {
			return nil, err
		}

		if best == nil || s.beats(o, evaluation, best, bestEvaluation) {
			best = o
			bestEvaluation = evaluation
		}
	}

	if best == nil {
		return nil, ErrNoOffersToSelect
	}

	return best, nil
}

// beats reports whether the candidate outranks the current best.
func (s OfferSelector) beats(
	candidate *offer.Offer, candidateEval pricing.Evaluation,
	best *offer.Offer, bestEval pricing.Evaluation,
) bool {
	if candidateEval.Band.SeverityRank() != bestEval.Band.SeverityRank() {
		return candidateEval.Band.SeverityRank() < bestEval.Band.SeverityRank()
	}

	candidatePrice := candidate.ProposedPrice().Value()
	bestPrice := best.ProposedPrice().Value()
	if candidatePrice != bestPrice {
		return candidatePrice < bestPrice
	}

	return candidate.CreatedAt().Before(best.CreatedAt())
}
