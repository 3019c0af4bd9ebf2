// Package delivery groups the inbound adapters started by the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter, such as the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
