//go:build !wasip1

package wasm

import (
	"context"
	"fmt"
)

// RecordAdapter stub for native builds.
type RecordAdapter struct{}

func NewRecordAdapter() *RecordAdapter {
	return &RecordAdapter{}
}

func (r *RecordAdapter) Record(ctx context.Context, message string) error {
	return fmt.Errorf("record adapter: %w", ErrNotWASM)
}
