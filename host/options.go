package host

import (
	"github.com/michealparks/lib-ai/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithHostFunctions configures the executor with a capability registry.
func WithHostFunctions(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithMaxRequestSize caps the size of capability payloads read from guest
// memory. Zero keeps the default.
func WithMaxRequestSize(size uint32) Option {
	return func(e *Executor) {
		e.maxRequestSize = size
	}
}
