// Package offer provides the Offer entity: a cleaner's priced bid on an
// open order.
//
// An offer is immutable except for its status. When the client accepts one
// offer, every sibling offer on the same order is superseded rather than
// deleted, so the bid history stays queryable.
package offer
