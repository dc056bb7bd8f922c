// Package wasmcontext propagates context.Context across the WASM boundary.
// It converts between Go contexts and the wire format attached to capability
// calls, and holds the current execution context for the binding.
package wasmcontext

import (
	stdcontext "context"
	"sync"
	"time"

	"github.com/michealparks/lib-ai/domain/entities"
)

// contextKey is a private key type to avoid collisions in context values.
type contextKey string

// RequestIDKey is the context key for the host-assigned request ID.
const RequestIDKey contextKey = "request_id"

// contextStore holds the context for the current entry-point invocation.
// WASM execution is single-threaded, so a guarded global is sufficient; the
// exported entry points set it before running and reset it afterwards.
var contextStore = struct {
	ctx stdcontext.Context
	sync.RWMutex
}{
	ctx: stdcontext.Background(),
}

// SetCurrentContext sets the context for the current entry-point invocation.
func SetCurrentContext(ctx stdcontext.Context) {
	contextStore.Lock()
	defer contextStore.Unlock()
	contextStore.ctx = ctx
}

// GetCurrentContext returns the context for the current invocation, or
// context.Background() if none has been set.
func GetCurrentContext() stdcontext.Context {
	contextStore.RLock()
	defer contextStore.RUnlock()
	if contextStore.ctx == nil {
		return stdcontext.Background()
	}
	return contextStore.ctx
}

// ResetContext restores the background context. Usually deferred by the
// entry point that called SetCurrentContext.
func ResetContext() {
	SetCurrentContext(stdcontext.Background())
}

// ContextToWire extracts deadline, cancellation state, and request ID from a
// context for transmission to the host alongside a capability payload.
func ContextToWire(ctx stdcontext.Context) entities.ContextWire {
	wire := entities.ContextWire{}

	if deadline, ok := ctx.Deadline(); ok {
		wire.Deadline = &deadline
		if timeout := time.Until(deadline); timeout > 0 {
			wire.TimeoutMs = timeout.Milliseconds()
		}
	}

	select {
	case <-ctx.Done():
		wire.Canceled = true
	default:
	}

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		if id, ok := requestID.(string); ok {
			wire.RequestID = id
		}
	}

	return wire
}

// WireToContext reconstructs a context from its wire form. Used when the
// host attaches context metadata to an entry-point invocation.
// Returns the new context and its CancelFunc.
func WireToContext(parent stdcontext.Context, wire entities.ContextWire) (stdcontext.Context, stdcontext.CancelFunc) {
	if parent == nil {
		parent = stdcontext.Background()
	}

	ctx := parent
	var cancel stdcontext.CancelFunc
	switch {
	case wire.Deadline != nil:
		ctx, cancel = stdcontext.WithDeadline(ctx, *wire.Deadline)
	case wire.TimeoutMs > 0:
		ctx, cancel = stdcontext.WithTimeout(ctx, time.Duration(wire.TimeoutMs)*time.Millisecond)
	default:
		ctx, cancel = stdcontext.WithCancel(ctx)
	}

	if wire.RequestID != "" {
		ctx = stdcontext.WithValue(ctx, RequestIDKey, wire.RequestID)
	}

	if wire.Canceled {
		cancel()
	}

	return ctx, cancel
}
