// Package delivery holds the entry points that drive the usecases.
package delivery

import "context"

// Delivery is a long-running server started once the fx graph is built.
type Delivery interface {
	// Serve blocks until the server stops. Shutdown is driven by fx OnStop hooks.
	Serve(ctx context.Context) error
}
