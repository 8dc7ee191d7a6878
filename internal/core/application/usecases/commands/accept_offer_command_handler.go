package commands

import (
	"context"

	"taza/internal/core/domain/model/offer"
	"taza/internal/pkg/errs"
)

// AcceptOfferCommandHandler handles the client's offer acceptance.
//
// The whole decision happens in one transaction: the chosen offer flips to
// accepted, every other pending offer is superseded, and the order moves to
// InProgress with its cleaner pinned. A concurrent second accept loses on
// the order's status check and rolls back.
type AcceptOfferCommandHandler struct {
	uowFactory OrderOfferUoWFactory
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(uowFactory OrderOfferUoWFactory) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer acceptance command.
func (h *AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
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

	offerRepo := uow.OfferRepository()
	offers, err := offerRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var chosen *offer.Offer
	for _, o := range offers {
		if o.ID().IsEqual(cmd.OfferID()) {
			chosen = o
			break
		}
	}
	if chosen == nil {
		return errs.NewObjectNotFoundError("offerID", cmd.OfferID())
	}

	if err = aggregate.AcceptOffer(chosen.CleanerID(), chosen.PartnerID()); err != nil {
		return err
	}

	if err = chosen.Accept(); err != nil {
		return err
	}
	if err = offerRepo.Update(ctx, chosen); err != nil {
		return err
	}

	for _, o := range offers {
		if o.ID().IsEqual(cmd.OfferID()) || o.Status() != offer.Pending {
			continue
		}
		if err = o.Supersede(); err != nil {
			return err
		}
		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
