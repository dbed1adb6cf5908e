package ports

import "context"

// Pacer spaces out requests to an external service.
// Pause blocks until the next request may be sent or ctx is done.
type Pacer interface {
	Pause(ctx context.Context) error
}
