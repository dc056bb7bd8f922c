//go:build !wasip1

package log

import (
	"context"
	"fmt"
	"log/slog"
)

// Handle for non-WASM builds (e.g., host-side tests). Prints to stdout to
// satisfy the interface without a host capability.
func (h *WasmLogHandler) Handle(_ context.Context, record slog.Record) error {
	fmt.Printf("[HOST-STUB] Level=%s Msg=%q\n", record.Level, record.Message)
	return nil
}
