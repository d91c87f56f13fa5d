// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server here) started by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
