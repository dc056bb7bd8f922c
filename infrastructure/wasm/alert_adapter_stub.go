//go:build !wasip1

package wasm

import (
	"context"
	"fmt"
)

// AlertAdapter stub for native builds.
type AlertAdapter struct{}

func NewAlertAdapter() *AlertAdapter {
	return &AlertAdapter{}
}

func (a *AlertAdapter) Alert(ctx context.Context, message string) error {
	return fmt.Errorf("alert adapter: %w", ErrNotWASM)
}
