package hostfuncs

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultMaxRequestSize limits the size of a single payload read from
// guest memory. Greeting payloads are tiny; 1MB leaves headroom for
// attr-heavy log records.
const DefaultMaxRequestSize = 1 * 1024 * 1024

// NotifyFunc is a generic function signature for fire-and-forget host
// functions. Both greeting capabilities (alert, log_message) are this
// shape: the guest sends a payload and expects no response.
type NotifyFunc[Req any] func(context.Context, Req) error

// ByteHandler is a function that accepts raw bytes (JSON) and returns raw
// bytes (JSON). This is the common interface WASM runtimes can easily use.
// Notify-style handlers return a nil response.
type ByteHandler func(context.Context, []byte) ([]byte, error)

// NewNotifyHandler wraps a typed NotifyFunc into a ByteHandler.
// On success the wrapped handler produces no response bytes; the wazero
// adapter exports these as void functions. Failures yield a structured
// ErrorResponse payload alongside the error so callers with a return
// channel stay consistent with the rest of the host surface.
func NewNotifyHandler[Req any](fn NotifyFunc[Req]) ByteHandler {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req Req
		if err := json.Unmarshal(payload, &req); err != nil {
			wrapped := fmt.Errorf("failed to unmarshal request: %w", err)
			return NewValidationError(wrapped.Error()).ToJSON(), wrapped
		}
		if err := fn(ctx, req); err != nil {
			return NewInternalError(err.Error()).ToJSON(), err
		}
		return nil, nil
	}
}
