// Package delivery provides the Delivery entity: a single courier leg of a
// partner order.
//
// Partner orders move items twice, to the partner facility and back. Each
// leg is its own entity with a strictly forward lifecycle; the courier who
// accepts a leg is pinned to it until it is delivered or cancelled.
package delivery
