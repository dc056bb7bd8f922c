package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/hostfuncs"
	libaiwazero "github.com/michealparks/lib-ai/infrastructure/wazero"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Executor manages the lifecycle of greeting binding modules.
type Executor struct {
	runtime        wazero.Runtime
	registry       *hostfuncs.HandlerRegistry
	maxRequestSize uint32
}

// NewExecutor creates a new executor with the given options. Without
// options the greeting capabilities are backed by the default slog sinks.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
			hostfuncs.WithBundle(hostfuncs.GreetingBundle()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	var adapterOpts []libaiwazero.AdapterOption
	if e.maxRequestSize > 0 {
		adapterOpts = append(adapterOpts, libaiwazero.WithMaxRequestSize(e.maxRequestSize))
	}

	if err := libaiwazero.RegisterWithRuntime(ctx, rt, e.registry, adapterOpts...); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host capabilities: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// BindingInstance represents an instantiated binding module.
type BindingInstance struct {
	module api.Module
}

// LoadBinding instantiates a binding from its WASM bytes.
func (e *Executor) LoadBinding(ctx context.Context, wasmBytes []byte) (*BindingInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	// Reactor-style modules initialize explicitly.
	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &BindingInstance{module: mod}, nil
}

// Greet invokes the binding's greet entry point with the given name.
// The guest formats the greeting and surfaces it through the alert
// capability; nothing is returned across the boundary.
func (b *BindingInstance) Greet(ctx context.Context, name string) error {
	f := b.module.ExportedFunction("greet")
	if f == nil {
		return fmt.Errorf("export %q not found", "greet")
	}

	if name == "" {
		// Empty name travels as the null ptr+len pair.
		_, err := f.Call(ctx, 0, 0)
		return err
	}

	ptr, err := b.writeGuestMemory(ctx, []byte(name))
	if err != nil {
		return err
	}

	_, err = f.Call(ctx, uint64(ptr), uint64(len(name)))
	return err
}

// Main invokes the binding's main entry point. The guest records its fixed
// message through the log capability.
func (b *BindingInstance) Main(ctx context.Context) error {
	f := b.module.ExportedFunction("main")
	if f == nil {
		return fmt.Errorf("export %q not found", "main")
	}
	_, err := f.Call(ctx)
	return err
}

// Manifest calls the binding's _manifest export and validates the result.
func (b *BindingInstance) Manifest(ctx context.Context) (*entities.Manifest, error) {
	data, err := b.callPacked(ctx, "_manifest")
	if err != nil {
		return nil, err
	}

	var manifest entities.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		// The export may have returned a structured error instead.
		var detail entities.ErrorDetail
		if jsonErr := json.Unmarshal(data, &detail); jsonErr == nil && detail.Message != "" {
			return nil, &detail
		}
		return nil, err
	}

	return &manifest, nil
}

// Schema calls the binding's _schema export and returns the raw JSON
// schema of the wire contract.
func (b *BindingInstance) Schema(ctx context.Context) ([]byte, error) {
	return b.callPacked(ctx, "_schema")
}

// callPacked invokes a no-argument export that returns a packed ptr+len
// and reads the payload from guest memory.
func (b *BindingInstance) callPacked(ctx context.Context, name string) ([]byte, error) {
	f := b.module.ExportedFunction(name)
	if f == nil {
		return nil, fmt.Errorf("export %q not found", name)
	}

	results, err := f.Call(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("export %q returned no result", name)
	}

	ptr := uint32(results[0] >> 32)
	length := uint32(results[0])
	if ptr == 0 || length == 0 {
		return nil, fmt.Errorf("null response from binding export %q", name)
	}

	data, ok := b.module.Memory().Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("failed to read response from guest memory")
	}

	// Copy before the guest reuses or frees the region.
	out := make([]byte, length)
	copy(out, data)
	return out, nil
}

// writeGuestMemory allocates guest memory via the binding's allocate
// export and writes data into it. The guest frees the region after
// consuming it.
func (b *BindingInstance) writeGuestMemory(ctx context.Context, data []byte) (uint32, error) {
	allocate := b.module.ExportedFunction("allocate")
	if allocate == nil {
		return 0, fmt.Errorf("guest does not export 'allocate'")
	}

	results, err := allocate.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to allocate in guest: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("allocate returned no results")
	}

	ptr := uint32(results[0]) //nolint:gosec // G115: WASM32 pointers are always 32-bit
	if !b.module.Memory().Write(ptr, data) {
		return 0, fmt.Errorf("failed to write to guest memory")
	}

	return ptr, nil
}
