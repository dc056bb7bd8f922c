//go:build wasip1

package log

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/internal/abi"
	"github.com/michealparks/lib-ai/internal/wasmcontext"
)

// Define the host function signature for recording a log message.
// This matches the export registered by infrastructure/wazero on the host.
//
//go:wasmimport libai_host log_message
//nolint:revive // intentional snake_case to match WASM import convention
func host_log_message(messagePacked uint64)

// Handle serializes a slog.Record and sends it to the host log capability.
func (h *WasmLogHandler) Handle(ctx context.Context, record slog.Record) error {
	wire := entities.LogWire{
		Context:   wasmcontext.ContextToWire(ctx),
		Level:     record.Level.String(),
		Message:   record.Message,
		Timestamp: record.Time,
	}

	record.Attrs(func(attr slog.Attr) bool {
		wire.Attrs = append(wire.Attrs, toLogAttr(attr))
		return true
	})

	payload, err := json.Marshal(wire)
	if err != nil {
		// Fall back to stdout so the record is not silently dropped.
		fmt.Printf("libai: failed to marshal log record for host: %v, original: %s\n", err, record.Message)
		return nil
	}

	packed := abi.PtrFromBytes(payload)
	defer abi.DeallocatePacked(packed)

	host_log_message(packed)
	return nil
}
