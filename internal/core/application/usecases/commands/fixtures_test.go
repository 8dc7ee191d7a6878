package commands_test

import (
	"testing"
	"time"

	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/offer"
	"taza/internal/core/domain/model/order"
	"taza/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, value float64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(value)
	require.NoError(t, err)
	return price
}

func mustEvaluation(t *testing.T, price, average float64) pricing.Evaluation {
	t.Helper()
	evaluation, err := pricing.Evaluate(price, average)
	require.NoError(t, err)
	return evaluation
}

// restoreOrder builds an order fixture in the given status with consistent
// role references for that status.
func restoreOrder(t *testing.T, status order.Status, partnerFlow bool) *order.Order {
	t.Helper()

	var cleanerID, partnerID, courierID *kernel.UUID
	needsCleaner := status != order.New && status != order.OffersReceived && status != order.Cancelled
	if needsCleaner {
		id := kernel.NewUUID()
		cleanerID = &id
	}
	if partnerFlow {
		id := kernel.NewUUID()
		partnerID = &id
	}
	courierLeg := status == order.CourierToPartner || status == order.AtPartner ||
		status == order.PartnerWorking || status == order.PartnerDone ||
		status == order.CourierToClient
	if courierLeg {
		id := kernel.NewUUID()
		courierID = &id
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.Cleaning,
		mustPrice(t, 10000), status, cleanerID, partnerID, courierID,
		mustEvaluation(t, 10000, 10000), time.Now().UTC(), nil)
	require.NoError(t, err)
	return aggregate
}

func restorePendingOffer(t *testing.T, orderID kernel.UUID, partnerID *kernel.UUID) *offer.Offer {
	t.Helper()
	o, err := offer.RestoreOffer(kernel.NewUUID(), orderID, kernel.NewUUID(), partnerID,
		mustPrice(t, 9500), "", "2 days", offer.Pending, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func restoreDelivery(
	t *testing.T, orderID kernel.UUID, kind delivery.Kind, status delivery.Status,
) *delivery.Delivery {
	t.Helper()
	var courierID *kernel.UUID
	if status != delivery.StatusNew && status != delivery.StatusCancelled {
		id := kernel.NewUUID()
		courierID = &id
	}
	leg, err := delivery.RestoreDelivery(
		kernel.NewUUID(), orderID, kind, courierID, status, time.Now().UTC())
	require.NoError(t, err)
	return leg
}
