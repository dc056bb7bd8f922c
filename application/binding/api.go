// Package binding provides the greeting binding lifecycle: the Binding
// interface, registration, and the WASM entry points exported to the host.
package binding

import (
	"context"
	"log/slog"

	"github.com/michealparks/lib-ai/domain/entities"
)

// Binding is the interface a guest module implements to serve the greeting
// entry points. DefaultBinding covers the standard behavior; custom
// implementations are registered the same way.
type Binding interface {
	// Manifest returns metadata about the binding.
	Manifest(ctx context.Context) (*entities.Manifest, error)
	// Greet surfaces a greeting for name through the alert capability.
	Greet(ctx context.Context, name string) error
	// Main records the fixed greeting through the log capability.
	Main(ctx context.Context) error
}

// WireContract describes the JSON payloads the binding sends across the
// boundary. The _schema export serves its generated JSON schema so hosts
// can validate traffic without a copy of these types.
type WireContract struct {
	Alert entities.AlertWire `json:"alert"`
	Log   entities.LogWire   `json:"log"`
}

// userBinding holds the registered binding implementation.
var userBinding Binding

// Register installs the binding served by the WASM exports.
// Guest authors call this from main() or an init function. A second call
// is ignored with a warning.
func Register(b Binding) {
	if userBinding != nil {
		slog.Warn("libai: binding already registered, ignoring second call")
		return
	}
	userBinding = b
}
