package order_test

import (
	"fmt"
	"testing"

	"taza/internal/core/domain/model/order"
	"taza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legalEdges enumerates every edge of the lifecycle graph with its permitted
// actors. Everything not listed here must be rejected.
type legalEdge struct {
	from   order.Status
	action order.Action
	to     order.Status
	actors []order.Actor
}

func getLegalEdges() []legalEdge {
	edges := []legalEdge{
		{order.New, order.ActionReceiveOffers, order.OffersReceived,
			[]order.Actor{order.ActorCleaner, order.ActorPartner}},
		{order.New, order.ActionAcceptOffer, order.InProgress,
			[]order.Actor{order.ActorClient}},
		{order.OffersReceived, order.ActionAcceptOffer, order.InProgress,
			[]order.Actor{order.ActorClient}},
		{order.InProgress, order.ActionDispatchToPartner, order.CourierToPartner,
			[]order.Actor{order.ActorCourier}},
		{order.InProgress, order.ActionConfirmCompletion, order.Completed,
			[]order.Actor{order.ActorClient}},
		{order.CourierToPartner, order.ActionArriveAtPartner, order.AtPartner,
			[]order.Actor{order.ActorCourier}},
		{order.AtPartner, order.ActionStartWork, order.PartnerWorking,
			[]order.Actor{order.ActorPartner}},
		{order.PartnerWorking, order.ActionFinishWork, order.PartnerDone,
			[]order.Actor{order.ActorPartner}},
		{order.PartnerDone, order.ActionDispatchToClient, order.CourierToClient,
			[]order.Actor{order.ActorCourier}},
		{order.CourierToClient, order.ActionDeliverToClient, order.Completed,
			[]order.Actor{order.ActorCourier}},
	}

	for _, status := range allStatuses() {
		if !status.IsTerminal() {
			edges = append(edges, legalEdge{status, order.ActionCancel, order.Cancelled,
				[]order.Actor{order.ActorClient, order.ActorPartner}})
		}
	}

	return edges
}

func allStatuses() []order.Status {
	return []order.Status{
		order.New,
		order.OffersReceived,
		order.InProgress,
		order.CourierToPartner,
		order.AtPartner,
		order.PartnerWorking,
		order.PartnerDone,
		order.CourierToClient,
		order.Completed,
		order.Cancelled,
	}
}

func allActors() []order.Actor {
	return []order.Actor{
		order.ActorClient,
		order.ActorCleaner,
		order.ActorPartner,
		order.ActorCourier,
	}
}

func findEdge(from order.Status, action order.Action, actor order.Actor) *legalEdge {
	for _, edge := range getLegalEdges() {
		if edge.from != from || edge.action != action {
			continue
		}
		for _, allowed := range edge.actors {
			if allowed == actor {
				e := edge
				return &e
			}
		}
	}
	return nil
}

func TestStatus_Apply_ExhaustiveLegality(t *testing.T) {
	for _, from := range allStatuses() {
		for _, action := range order.AllActions() {
			for _, actor := range allActors() {
				name := fmt.Sprintf("%s/%s/%s", from, action, actor)
				t.Run(name, func(t *testing.T) {
					next, err := from.Apply(action, actor)

					if edge := findEdge(from, action, actor); edge != nil {
						require.NoError(t, err)
						assert.Equal(t, edge.to, next)
						return
					}

					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrInvalidTransition)
					assert.Equal(t, order.Unknown, next)
				})
			}
		}
	}
}

func TestStatus_Apply_TerminalClosure(t *testing.T) {
	for _, terminal := range []order.Status{order.Completed, order.Cancelled} {
		for _, action := range order.AllActions() {
			for _, actor := range allActors() {
				t.Run(fmt.Sprintf("%s rejects %s by %s", terminal, action, actor), func(t *testing.T) {
					_, err := terminal.Apply(action, actor)

					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				})
			}
		}
	}
}

func TestStatus_Apply_ReportsOffendingPair(t *testing.T) {
	t.Run("illegal edge names the from and to statuses", func(t *testing.T) {
		_, err := order.New.Apply(order.ActionConfirmCompletion, order.ActorClient)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "New", transitionErr.From)
		assert.Equal(t, "Completed", transitionErr.To)
	})

	t.Run("forbidden actor names the attempted edge", func(t *testing.T) {
		_, err := order.OffersReceived.Apply(order.ActionAcceptOffer, order.ActorCourier)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "OffersReceived", transitionErr.From)
		assert.Equal(t, "InProgress", transitionErr.To)
		assert.Contains(t, err.Error(), "courier is not permitted")
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all lifecycle statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			require.NoError(t, status.Validate(), "status %s", status)
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.New, "New"},
		{order.OffersReceived, "OffersReceived"},
		{order.InProgress, "InProgress"},
		{order.CourierToPartner, "CourierToPartner"},
		{order.AtPartner, "AtPartner"},
		{order.PartnerWorking, "PartnerWorking"},
		{order.PartnerDone, "PartnerDone"},
		{order.CourierToClient, "CourierToClient"},
		{order.Completed, "Completed"},
		{order.Cancelled, "Cancelled"},
		{order.Unknown, "Unknown"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, status := range allStatuses() {
		if status != order.Completed && status != order.Cancelled {
			assert.False(t, status.IsTerminal(), "status %s", status)
		}
	}
}

func TestStatus_CanApply(t *testing.T) {
	assert.True(t, order.New.CanApply(order.ActionReceiveOffers, order.ActorCleaner))
	assert.False(t, order.New.CanApply(order.ActionReceiveOffers, order.ActorClient))
	assert.False(t, order.Completed.CanApply(order.ActionCancel, order.ActorClient))
}

func TestAction_Target(t *testing.T) {
	assert.Equal(t, order.InProgress, order.ActionAcceptOffer.Target())
	assert.Equal(t, order.Completed, order.ActionDeliverToClient.Target())
	assert.Equal(t, order.Completed, order.ActionConfirmCompletion.Target())
	assert.Equal(t, order.Cancelled, order.ActionCancel.Target())
	assert.Equal(t, order.Unknown, order.ActionUnknown.Target())
}
