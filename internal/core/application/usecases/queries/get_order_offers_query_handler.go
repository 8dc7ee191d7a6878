package queries

import (
	"context"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/offer"
	"taza/internal/core/domain/model/order"
	"taza/internal/core/domain/model/pricing"
	"taza/internal/core/domain/services"
	"taza/internal/core/ports"
	"taza/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderOffersQueryHandler reads the offers placed on an order and scores
// each proposed price against the category market average. The offer the
// OfferSelector would pick is flagged as recommended.
type GetOrderOffersQueryHandler struct {
	db       *gorm.DB
	rates    ports.MarketRateProvider
	selector services.OfferSelector
}

// NewGetOrderOffersQueryHandler creates a handler for order offer queries.
func NewGetOrderOffersQueryHandler(
	db *gorm.DB, rates ports.MarketRateProvider,
) GetOrderOffersQueryHandler {
	return GetOrderOffersQueryHandler{
		db:       db,
		rates:    rates,
		selector: services.NewOfferSelector(),
	}
}

// Handle executes the query. Offers are returned oldest first; superseded
// and accepted offers keep their fairness score but are never recommended.
func (h GetOrderOffersQueryHandler) Handle(
	ctx context.Context,
	query GetOrderOffersQuery,
) ([]GetOrderOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	average, err := h.orderMarketAverage(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	offers, err := h.readOffers(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	recommendedID := h.recommendedOfferID(offers, average)

	responses := make([]GetOrderOffersQueryResponse, 0, len(offers))
	for _, o := range offers {
		evaluation, evalErr := pricing.Evaluate(o.ProposedPrice().Value(), average)
		if evalErr != nil {
			return nil, evalErr
		}

		responses = append(responses, GetOrderOffersQueryResponse{
			ID:            o.ID(),
			CleanerID:     o.CleanerID(),
			PartnerID:     o.PartnerID(),
			ProposedPrice: o.ProposedPrice().Value(),
			Comment:       o.Comment(),
			Eta:           o.Eta(),
			Status:        o.Status().String(),
			Band:          evaluation.Band.ID(),
			BandLabel:     evaluation.Band.Label(),
			Recommended:   recommendedID != nil && o.ID().IsEqual(*recommendedID),
			CreatedAt:     o.CreatedAt(),
		})
	}

	return responses, nil
}

// orderMarketAverage resolves the market average for the order's category.
func (h GetOrderOffersQueryHandler) orderMarketAverage(
	ctx context.Context, orderID kernel.UUID,
) (float64, error) {
	var category order.Category
	row := h.db.WithContext(ctx).Raw(`
		SELECT category FROM orders WHERE id = ?
	`, orderID.Bytes()).Row()
	if err := row.Scan(&category); err != nil {
		return 0, errs.NewObjectNotFoundErrorWithCause("order", orderID.String(), err)
	}

	return h.rates.GetAverage(ctx, category)
}

// readOffers rehydrates the order's offers so the selector can rank them.
func (h GetOrderOffersQueryHandler) readOffers(
	ctx context.Context, orderID kernel.UUID,
) ([]*offer.Offer, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cleaner_id,
			partner_id,
			proposed_price,
			comment,
			eta,
			status,
			created_at
		FROM offers
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]*offer.Offer, 0)
	for rows.Next() {
		var id, cleanerID uuid.UUID
		var partnerID *uuid.UUID
		var proposedPrice float64
		var comment, eta string
		var status offer.Status
		var createdAt time.Time

		if err = rows.Scan(
			&id, &cleanerID, &partnerID, &proposedPrice,
			&comment, &eta, &status, &createdAt,
		); err != nil {
			return nil, err
		}

		o, restoreErr := restoreOffer(
			id, cleanerID, partnerID, orderID, proposedPrice, comment, eta, status, createdAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		offers = append(offers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}

// recommendedOfferID ranks the pending offers; nil when nothing is pending.
func (h GetOrderOffersQueryHandler) recommendedOfferID(
	offers []*offer.Offer, average float64,
) *kernel.UUID {
	best, err := h.selector.SelectBest(offers, average)
	if err != nil {
		// Nothing pending to recommend, or the offers cannot be ranked.
		return nil
	}

	id := best.ID()
	return &id
}

func restoreOffer(
	id, cleanerID uuid.UUID,
	partnerID *uuid.UUID,
	orderID kernel.UUID,
	proposedPrice float64,
	comment, eta string,
	status offer.Status,
	createdAt time.Time,
) (*offer.Offer, error) {
	offerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	bidder, err := kernel.UUIDFromBytes(cleanerID[:])
	if err != nil {
		return nil, err
	}

	var partner *kernel.UUID
	if partnerID != nil {
		p, partnerErr := kernel.UUIDFromBytes((*partnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partner = &p
	}

	price, err := kernel.NewPrice(proposedPrice)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(offerID, orderID, bidder, partner, price, comment, eta, status, createdAt)
}
