//go:build wasip1

package wasm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/internal/abi"
	"github.com/michealparks/lib-ai/internal/wasmcontext"
)

// AlertAdapter implements ports.Alerter over the libai_host alert import.
type AlertAdapter struct{}

// NewAlertAdapter creates the WASM-backed alert adapter.
func NewAlertAdapter() *AlertAdapter {
	return &AlertAdapter{}
}

// Alert serializes the message with context metadata and hands it to the
// host. The host function is void; failure here can only mean the payload
// could not be marshaled.
func (a *AlertAdapter) Alert(ctx context.Context, message string) error {
	wire := entities.AlertWire{
		Message: message,
		Context: wasmcontext.ContextToWire(ctx),
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("failed to marshal alert payload: %w", err)
	}

	packed := abi.PtrFromBytes(payload)
	defer abi.DeallocatePacked(packed)

	host_alert(packed)
	return nil
}
