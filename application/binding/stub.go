//go:build !wasip1

package binding

import (
	"context"

	"github.com/michealparks/lib-ai/domain/entities"
)

// StubBinding is a no-op Binding for tests and non-WASM environments.
type StubBinding struct{}

// Manifest returns a minimal valid manifest.
func (s *StubBinding) Manifest(ctx context.Context) (*entities.Manifest, error) {
	return &entities.Manifest{
		Name:    "stub",
		Version: "0.0.1",
	}, nil
}

// Greet performs no side effect.
func (s *StubBinding) Greet(ctx context.Context, name string) error {
	return nil
}

// Main performs no side effect.
func (s *StubBinding) Main(ctx context.Context) error {
	return nil
}
