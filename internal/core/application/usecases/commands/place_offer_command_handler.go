package commands

import (
	"context"

	"taza/internal/core/domain/model/offer"
	"taza/internal/core/domain/model/order"
	"taza/internal/pkg/errs"
)

// PlaceOfferCommandHandler handles the business logic for bidding on orders.
// The first bid on an order moves it from New to OffersReceived; later bids
// leave the status untouched. Bids on orders past acceptance are rejected.
type PlaceOfferCommandHandler struct {
	uowFactory OrderOfferUoWFactory
}

// NewPlaceOfferCommandHandler creates a handler for offer placement.
func NewPlaceOfferCommandHandler(uowFactory OrderOfferUoWFactory) PlaceOfferCommandHandler {
	return PlaceOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer placement command inside one transaction so the
// order status bump and the new offer land together.
func (h *PlaceOfferCommandHandler) Handle(ctx context.Context, cmd PlaceOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch aggregate.Status() {
	case order.New:
		actor := order.ActorCleaner
		if cmd.PartnerID() != nil {
			actor = order.ActorPartner
		}
		if err = aggregate.ReceiveOffers(actor); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	case order.OffersReceived:
		// still open, nothing to bump
	default:
		return errs.NewInvalidTransitionError(
			aggregate.Status().String(), order.OffersReceived.String())
	}

	bid, err := offer.NewOffer(
		cmd.OfferID(), cmd.OrderID(), cmd.CleanerID(), cmd.PartnerID(),
		cmd.ProposedPrice(), cmd.Comment(), cmd.Eta())
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Add(ctx, bid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
