// Package services contains domain services implementing business logic
// that spans multiple aggregates.
//
// OfferSelector ranks the bids on an order by price fairness so the client
// sees the most sensible offer first.
package services
