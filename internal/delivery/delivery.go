// Package delivery defines the process entry points started by the fleetd binary.
package delivery

import "context"

// Delivery is a long-running server; Serve blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
