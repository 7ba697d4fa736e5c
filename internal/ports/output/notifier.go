package output

import "context"

// Notifier delivers plain text to the announcement destination. Delivery is
// a single attempt; the transport decides its own timeouts and retries.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
