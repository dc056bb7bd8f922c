//go:build wasip1

package wasm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/domain/ports"
	"github.com/michealparks/lib-ai/internal/abi"
	"github.com/michealparks/lib-ai/internal/wasmcontext"
)

// Compile-time interface compliance checks.
var (
	_ ports.Alerter  = (*AlertAdapter)(nil)
	_ ports.Recorder = (*RecordAdapter)(nil)
)

// RecordAdapter implements ports.Recorder over the libai_host log_message
// import. It sends a bare message envelope; structured records from the
// slog handler travel over the same import with level and attrs set.
type RecordAdapter struct{}

// NewRecordAdapter creates the WASM-backed record adapter.
func NewRecordAdapter() *RecordAdapter {
	return &RecordAdapter{}
}

// Record serializes the message with context metadata and hands it to the
// host log capability.
func (r *RecordAdapter) Record(ctx context.Context, message string) error {
	wire := entities.LogWire{
		Message: message,
		Context: wasmcontext.ContextToWire(ctx),
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("failed to marshal log payload: %w", err)
	}

	packed := abi.PtrFromBytes(payload)
	defer abi.DeallocatePacked(packed)

	host_log_message(packed)
	return nil
}
