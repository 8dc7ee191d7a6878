package order

import (
	"fmt"

	"taza/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose legal edges are expressed as a data-driven transition table,
// gated by the actor attempting each action.
//
// Two lifecycle shapes share the table:
//
//	direct flow:   New ──> OffersReceived ──> InProgress ──> Completed
//	partner flow:  New ──> OffersReceived ──> InProgress ──> CourierToPartner
//	               ──> AtPartner ──> PartnerWorking ──> PartnerDone
//	               ──> CourierToClient ──> Completed
//
// Cancelled is reachable from every non-terminal state. Completed and
// Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a client publishes an order.
	New

	// OffersReceived indicates at least one cleaner or partner has bid.
	OffersReceived

	// InProgress indicates the client accepted an offer and the chosen
	// cleaner owns the job.
	InProgress

	// CourierToPartner indicates a courier is transporting the items to
	// the partner facility (partner flow only).
	CourierToPartner

	// AtPartner indicates the items arrived at the partner facility.
	AtPartner

	// PartnerWorking indicates the partner started the cleaning work.
	PartnerWorking

	// PartnerDone indicates the partner finished and uploaded completion
	// evidence; the order awaits the return leg.
	PartnerDone

	// CourierToClient indicates a courier is returning the items to the
	// client.
	CourierToClient

	// Completed is the terminal success state.
	Completed

	// Cancelled is the terminal abort state, reachable from any
	// non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		New:              "New",
		OffersReceived:   "OffersReceived",
		InProgress:       "InProgress",
		CourierToPartner: "CourierToPartner",
		AtPartner:        "AtPartner",
		PartnerWorking:   "PartnerWorking",
		PartnerDone:      "PartnerDone",
		CourierToClient:  "CourierToClient",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:              "New",
		OffersReceived:   "OffersReceived",
		InProgress:       "InProgress",
		CourierToPartner: "CourierToPartner",
		AtPartner:        "AtPartner",
		PartnerWorking:   "PartnerWorking",
		PartnerDone:      "PartnerDone",
		CourierToClient:  "CourierToClient",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the stored representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Actor identifies which marketplace role attempts a transition. Every edge
// of the lifecycle is gated on the actor performing it.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor.
	ActorUnknown Actor = iota

	// ActorClient is the customer who published the order.
	ActorClient

	// ActorCleaner is an individual cleaner bidding on and executing
	// direct-flow orders.
	ActorCleaner

	// ActorPartner is a cleaning business handling partner-flow orders.
	ActorPartner

	// ActorCourier transports items between client and partner.
	ActorCourier
)

func getActorStrings() map[Actor]string {
	return map[Actor]string{
		ActorUnknown: "unknown",
		ActorClient:  "client",
		ActorCleaner: "cleaner",
		ActorPartner: "partner",
		ActorCourier: "courier",
	}
}

// String returns the role name of the actor.
func (a Actor) String() string {
	if s, ok := getActorStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// ActorFromString parses the wire representation of an actor role.
func ActorFromString(s string) (Actor, error) {
	for actor, str := range getActorStrings() {
		if str == s && actor != ActorUnknown {
			return actor, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actor",
		fmt.Errorf("%q is not a valid actor", s))
}

// Action identifies a lifecycle operation an actor attempts on an order.
// Each action has exactly one target status; whether it is legal depends on
// the current status and the actor, per the transition table.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionReceiveOffers records the first bid arriving on a new order.
	ActionReceiveOffers

	// ActionAcceptOffer is the client choosing one specific offer.
	ActionAcceptOffer

	// ActionDispatchToPartner is a courier taking the pickup leg.
	ActionDispatchToPartner

	// ActionArriveAtPartner is the pickup leg being delivered.
	ActionArriveAtPartner

	// ActionStartWork is the partner explicitly starting the job.
	ActionStartWork

	// ActionFinishWork is the partner uploading completion evidence.
	ActionFinishWork

	// ActionDispatchToClient is a courier taking the return leg.
	ActionDispatchToClient

	// ActionDeliverToClient is the return leg being delivered.
	ActionDeliverToClient

	// ActionConfirmCompletion is the client confirming a direct-flow job.
	ActionConfirmCompletion

	// ActionCancel aborts the order from any non-terminal state.
	ActionCancel
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:           "unknown",
		ActionReceiveOffers:     "receive_offers",
		ActionAcceptOffer:       "accept_offer",
		ActionDispatchToPartner: "dispatch_to_partner",
		ActionArriveAtPartner:   "arrive_at_partner",
		ActionStartWork:         "start_work",
		ActionFinishWork:        "finish_work",
		ActionDispatchToClient:  "dispatch_to_client",
		ActionDeliverToClient:   "deliver_to_client",
		ActionConfirmCompletion: "confirm_completion",
		ActionCancel:            "cancel",
	}
}

// AllActions returns every defined lifecycle action, used by exhaustive
// legality checks.
func AllActions() []Action {
	return []Action{
		ActionReceiveOffers,
		ActionAcceptOffer,
		ActionDispatchToPartner,
		ActionArriveAtPartner,
		ActionStartWork,
		ActionFinishWork,
		ActionDispatchToClient,
		ActionDeliverToClient,
		ActionConfirmCompletion,
		ActionCancel,
	}
}

// String returns the wire name of the action.
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// Target returns the status the action leads to when legal. Used to report
// the offending (from, to) pair when a transition is rejected.
func (a Action) Target() Status {
	switch a {
	case ActionReceiveOffers:
		return OffersReceived
	case ActionAcceptOffer:
		return InProgress
	case ActionDispatchToPartner:
		return CourierToPartner
	case ActionArriveAtPartner:
		return AtPartner
	case ActionStartWork:
		return PartnerWorking
	case ActionFinishWork:
		return PartnerDone
	case ActionDispatchToClient:
		return CourierToClient
	case ActionDeliverToClient, ActionConfirmCompletion:
		return Completed
	case ActionCancel:
		return Cancelled
	default:
		return Unknown
	}
}

// transitionKey addresses one edge of the lifecycle graph.
type transitionKey struct {
	from   Status
	action Action
}

// transitionRule is the table entry for a legal edge: the target status and
// the actors permitted to drive it.
type transitionRule struct {
	to     Status
	actors []Actor
}

// getTransitions builds the legal edge table. ActionCancel is added for
// every non-terminal status rather than listed per state.
func getTransitions() map[transitionKey]transitionRule {
	transitions := map[transitionKey]transitionRule{
		{New, ActionReceiveOffers}:                {OffersReceived, []Actor{ActorCleaner, ActorPartner}},
		{New, ActionAcceptOffer}:                  {InProgress, []Actor{ActorClient}},
		{OffersReceived, ActionAcceptOffer}:       {InProgress, []Actor{ActorClient}},
		{InProgress, ActionDispatchToPartner}:     {CourierToPartner, []Actor{ActorCourier}},
		{InProgress, ActionConfirmCompletion}:     {Completed, []Actor{ActorClient}},
		{CourierToPartner, ActionArriveAtPartner}: {AtPartner, []Actor{ActorCourier}},
		{AtPartner, ActionStartWork}:              {PartnerWorking, []Actor{ActorPartner}},
		{PartnerWorking, ActionFinishWork}:        {PartnerDone, []Actor{ActorPartner}},
		{PartnerDone, ActionDispatchToClient}:     {CourierToClient, []Actor{ActorCourier}},
		{CourierToClient, ActionDeliverToClient}:  {Completed, []Actor{ActorCourier}},
	}

	for status := range getValidStatusStrings() {
		if !status.IsTerminal() {
			transitions[transitionKey{status, ActionCancel}] =
				transitionRule{Cancelled, []Actor{ActorClient, ActorPartner}}
		}
	}

	return transitions
}

// Apply attempts a lifecycle action as the given actor and returns the next
// status. Illegal (status, action) pairs and forbidden actors are rejected
// synchronously with an InvalidTransitionError identifying the offending
// (from, to) pair.
func (s Status) Apply(action Action, actor Actor) (Status, error) {
	rule, ok := getTransitions()[transitionKey{s, action}]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), action.Target().String())
	}

	for _, allowed := range rule.actors {
		if actor == allowed {
			return rule.to, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionErrorWithCause(s.String(), rule.to.String(),
		fmt.Errorf("%s is not permitted to %s", actor, action))
}

// CanApply reports whether the action is legal for the actor from this
// status, without performing the transition.
func (s Status) CanApply(action Action, actor Actor) bool {
	_, err := s.Apply(action, actor)
	return err == nil
}
