// Package client provides the Client aggregate: the ordering side of the
// marketplace with its loyalty point balance.
package client
