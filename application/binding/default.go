package binding

import (
	"context"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/greet"
)

// Version of the SDK, reported in every manifest.
const Version = "0.1.0"

// DefaultBinding is the standard Binding implementation backed by the greet
// package and the WASM capability adapters.
type DefaultBinding struct {
	opts []greet.Option
}

// NewDefaultBinding creates a DefaultBinding. Options are passed through to
// every greet operation; tests use them to inject recording ports.
func NewDefaultBinding(opts ...greet.Option) *DefaultBinding {
	return &DefaultBinding{opts: opts}
}

// Manifest returns the binding's identity and required capabilities.
func (b *DefaultBinding) Manifest(ctx context.Context) (*entities.Manifest, error) {
	m := &entities.Manifest{
		Name:        "lib-ai",
		Version:     Version,
		Description: "Greeting binding: formats greetings and delivers them through host alert/log capabilities",
		Capabilities: []entities.Capability{
			entities.NewCapability(entities.CapabilityAlert),
			entities.NewCapability(entities.CapabilityLog),
		},
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Greet implements Binding.
func (b *DefaultBinding) Greet(ctx context.Context, name string) error {
	return greet.Greet(ctx, name, b.opts...)
}

// Main implements Binding.
func (b *DefaultBinding) Main(ctx context.Context) error {
	return greet.World(ctx, b.opts...)
}
