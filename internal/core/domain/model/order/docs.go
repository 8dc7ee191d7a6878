// Package order provides the Order aggregate root and its lifecycle state
// machine for the cleaning marketplace.
//
// The package includes:
//   - Order: the aggregate root owning identity, pricing snapshot, and the
//     role references assigned during the multi-party handoff
//   - Status/Action/Actor: a data-driven state machine whose legal edges are
//     a table from (status, action) to status, gated by actor
//   - Category: the closed enumeration of service categories
//
// Key business rules:
//   - two lifecycle shapes coexist: a direct client-cleaner flow and a
//     partner flow routed through couriers
//   - the chosen cleaner is set exactly once, when the client accepts an
//     offer; the price offer freezes at the same moment
//   - Completed and Cancelled are terminal; illegal edges are rejected with
//     an InvalidTransitionError naming the offending (from, to) pair
//
// The package follows Domain-Driven Design principles: rich domain behavior,
// encapsulation through private fields, and validation on construction and
// restoration from persistence.
package order
