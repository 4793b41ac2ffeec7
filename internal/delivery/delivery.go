// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP today).
type Delivery interface {
	Serve(ctx context.Context) error
}
