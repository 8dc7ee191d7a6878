package order_test

import (
	"testing"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
	"taza/internal/core/domain/model/pricing"
	"taza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, v float64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(v)
	require.NoError(t, err)
	return price
}

func mustEvaluation(t *testing.T, price, avg float64) pricing.Evaluation {
	t.Helper()
	eval, err := pricing.Evaluate(price, avg)
	require.NoError(t, err)
	return eval
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.Clothing,
		mustPrice(t, 5000),
		mustEvaluation(t, 5000, 5000),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in New status", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.ChosenCleaner())
		assert.Nil(t, o.Partner())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.CompletedAt())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, pricing.Fair, o.TazaIndex().Band)
	})

	t.Run("should reject invalid order ID", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{},
			kernel.NewUUID(),
			order.Clothing,
			mustPrice(t, 5000),
			mustEvaluation(t, 5000, 5000),
		)

		require.Error(t, err)
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			order.CategoryUnknown,
			mustPrice(t, 5000),
			mustEvaluation(t, 5000, 5000),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			order.Clothing,
			kernel.Price{},
			mustEvaluation(t, 5000, 5000),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("constructed order validates", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})
}

func TestOrder_DirectFlow(t *testing.T) {
	t.Run("full direct lifecycle", func(t *testing.T) {
		o := newTestOrder(t)
		cleanerID := kernel.NewUUID()

		require.NoError(t, o.ReceiveOffers(order.ActorCleaner))
		assert.Equal(t, order.OffersReceived, o.Status())

		require.NoError(t, o.AcceptOffer(cleanerID, nil))
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.ChosenCleaner())
		assert.True(t, o.ChosenCleaner().IsEqual(cleanerID))
		assert.False(t, o.IsPartnerFlow())

		require.NoError(t, o.ConfirmCompletion())
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.WithinDuration(t, time.Now().UTC(), *o.CompletedAt(), time.Minute)
	})

	t.Run("client can accept straight from New", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), nil))
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("second accept fails once a cleaner is chosen", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()

		require.NoError(t, o.AcceptOffer(first, nil))

		err := o.AcceptOffer(kernel.NewUUID(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, o.ChosenCleaner().IsEqual(first), "chosen cleaner must never be overwritten")
	})

	t.Run("second complete fails on terminal order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), nil))
		require.NoError(t, o.ConfirmCompletion())

		err := o.ConfirmCompletion()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("direct order cannot enter the courier leg", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), nil))

		err := o.DispatchToPartner(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_PartnerFlow(t *testing.T) {
	newPartnerOrder := func(t *testing.T) (*order.Order, kernel.UUID) {
		t.Helper()
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.ReceiveOffers(order.ActorPartner))
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), &partnerID))
		return o, partnerID
	}

	t.Run("full partner lifecycle", func(t *testing.T) {
		o, partnerID := newPartnerOrder(t)
		courierID := kernel.NewUUID()

		assert.True(t, o.IsPartnerFlow())
		require.NotNil(t, o.Partner())
		assert.True(t, o.Partner().IsEqual(partnerID))

		require.NoError(t, o.DispatchToPartner(courierID))
		assert.Equal(t, order.CourierToPartner, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))

		require.NoError(t, o.ArriveAtPartner())
		assert.Equal(t, order.AtPartner, o.Status())

		require.NoError(t, o.StartWork())
		assert.Equal(t, order.PartnerWorking, o.Status())

		require.NoError(t, o.FinishWork())
		assert.Equal(t, order.PartnerDone, o.Status())

		require.NoError(t, o.DispatchToClient(kernel.NewUUID()))
		assert.Equal(t, order.CourierToClient, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID), "courier reference is pinned on first assignment")

		require.NoError(t, o.DeliverToClient())
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
	})

	t.Run("partner order cannot be confirmed as direct", func(t *testing.T) {
		o, _ := newPartnerOrder(t)

		err := o.ConfirmCompletion()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("handoff steps cannot be skipped", func(t *testing.T) {
		o, _ := newPartnerOrder(t)
		require.NoError(t, o.DispatchToPartner(kernel.NewUUID()))

		// StartWork requires AtPartner, not CourierToPartner.
		err := o.StartWork()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("client cancels a new order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(order.ActorClient))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("partner cancels mid-flow", func(t *testing.T) {
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), &partnerID))
		require.NoError(t, o.DispatchToPartner(kernel.NewUUID()))

		require.NoError(t, o.Cancel(order.ActorPartner))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("courier cannot cancel", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel(order.ActorCourier)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancelled order permits no further transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(order.ActorClient))

		require.Error(t, o.ReceiveOffers(order.ActorCleaner))
		require.Error(t, o.AcceptOffer(kernel.NewUUID(), nil))
		require.Error(t, o.Cancel(order.ActorClient))
	})
}

func TestOrder_UpdatePriceOffer(t *testing.T) {
	t.Run("price is mutable before a cleaner is chosen", func(t *testing.T) {
		o := newTestOrder(t)
		newPrice := mustPrice(t, 7000)
		newEval := mustEvaluation(t, 7000, 5000)

		require.NoError(t, o.UpdatePriceOffer(newPrice, newEval))
		assert.InDelta(t, 7000.0, o.PriceOffer().Value(), 0.0001)
		assert.Equal(t, pricing.VIP, o.TazaIndex().Band)
	})

	t.Run("price freezes once a cleaner is chosen", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), nil))

		err := o.UpdatePriceOffer(mustPrice(t, 7000), mustEvaluation(t, 7000, 5000))
		require.Error(t, err)
		assert.Equal(t, order.ErrCleanerAlreadyChosen, err)
		assert.InDelta(t, 5000.0, o.PriceOffer().Value(), 0.0001)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a persisted in-progress order", func(t *testing.T) {
		id := kernel.NewUUID()
		clientID := kernel.NewUUID()
		cleanerID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			id, clientID, order.Carpets, mustPrice(t, 9000),
			order.InProgress, &cleanerID, nil, nil,
			mustEvaluation(t, 9000, 10000), createdAt, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Carpets, mustPrice(t, 9000),
			order.Unknown, nil, nil, nil,
			mustEvaluation(t, 9000, 10000), time.Now().UTC(), nil,
		)

		require.Error(t, err)
	})

	t.Run("rejects in-progress order without a chosen cleaner", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Carpets, mustPrice(t, 9000),
			order.InProgress, nil, nil, nil,
			mustEvaluation(t, 9000, 10000), time.Now().UTC(), nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects courier leg without a partner", func(t *testing.T) {
		cleanerID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Carpets, mustPrice(t, 9000),
			order.CourierToPartner, &cleanerID, nil, &courierID,
			mustEvaluation(t, 9000, 10000), time.Now().UTC(), nil,
		)

		require.Error(t, err)
	})
}

func TestCategory(t *testing.T) {
	t.Run("round-trips through its wire name", func(t *testing.T) {
		for _, c := range order.AllCategories() {
			parsed, err := order.CategoryFromString(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.CategoryFromString("jewelry")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown category fails validation", func(t *testing.T) {
		require.Error(t, order.CategoryUnknown.Validate())
		require.Error(t, order.Category(99).Validate())
	})
}
