package ports

import "context"

// Alerter surfaces a message through the host's alert capability.
// The host defines what surfacing means; the guest only guarantees the
// message text is delivered unchanged, once per call.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}
