//go:build wasip1

package binding

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/michealparks/lib-ai/application/schema"
	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/internal/abi"
	"github.com/michealparks/lib-ai/internal/wasmcontext"
	_ "github.com/michealparks/lib-ai/log" // route slog through the host log capability
)

// The functions below are exported to the WASM host. Each performs panic
// recovery and ABI translation around the registered binding.

//go:wasmexport greet
func exportGreet(namePtr uint32, nameLen uint32) {
	handleVoidCall("greet", func() error {
		if userBinding == nil {
			return fmt.Errorf("binding not registered")
		}

		var name string
		if namePtr != 0 && nameLen > 0 {
			packed := abi.PackPtrLen(namePtr, nameLen)
			name = string(abi.BytesFromPtr(packed))
			// The host wrote the name into guest-allocated memory; the
			// guest owns it and frees it once read.
			abi.DeallocatePacked(packed)
		}

		ctx := wasmcontext.GetCurrentContext()
		return userBinding.Greet(ctx, name)
	})
}

//go:wasmexport main
func exportMain() {
	handleVoidCall("main", func() error {
		if userBinding == nil {
			return fmt.Errorf("binding not registered")
		}
		return userBinding.Main(wasmcontext.GetCurrentContext())
	})
}

//go:wasmexport _manifest
func exportManifest() uint64 {
	return handlePackedCall(func() (interface{}, error) {
		if userBinding == nil {
			return nil, fmt.Errorf("binding not registered")
		}
		manifest, err := userBinding.Manifest(wasmcontext.GetCurrentContext())
		if err != nil {
			return nil, err
		}
		manifest.SDKVersion = Version
		return manifest, nil
	})
}

//go:wasmexport _schema
func exportSchema() uint64 {
	return handlePackedCall(func() (interface{}, error) {
		return schema.Generate(&WireContract{})
	})
}

// handleVoidCall wraps the void entry points (greet, main). The export has
// no return channel, so failures are recovered, logged, and dropped; the
// host must never trap on a guest error.
func handleVoidCall(name string, f func() error) {
	defer func() {
		if r := recover(); r != nil {
			abi.FreeAllTracked()
			slog.Error("libai: entry point panic recovered", "entry", name, "panic", fmt.Sprintf("%v", r))
		}
		wasmcontext.ResetContext()
	}()

	if err := f(); err != nil {
		slog.Error("libai: entry point failed", "entry", name, "error", err.Error())
	}
}

// handlePackedCall wraps the exports that return a packed JSON payload
// (_manifest, _schema). On error or panic it returns a packed ErrorDetail
// instead of trapping.
func handlePackedCall(f func() (interface{}, error)) (packedResult uint64) {
	defer func() {
		if r := recover(); r != nil {
			abi.FreeAllTracked()
			detail := &entities.ErrorDetail{
				Message: fmt.Sprintf("binding panic: %v", r),
				Type:    "panic",
				Stack:   debug.Stack(),
			}
			slog.Error("libai: binding panic recovered", "error", detail.Message)
			packedResult = packErrorDetail(detail)
		}
	}()

	result, err := f()
	if err != nil {
		slog.Error("libai: binding export returned error", "error", err.Error())
		packedResult = packErrorDetail(entities.ToErrorDetail(err))
		return
	}

	var data []byte
	switch v := result.(type) {
	case []byte:
		data = v
	default:
		var marshalErr error
		data, marshalErr = json.Marshal(v)
		if marshalErr != nil {
			slog.Error("libai: failed to marshal export result", "error", marshalErr.Error())
			packedResult = packErrorDetail(entities.ToErrorDetail(marshalErr))
			return
		}
	}

	packedResult = abi.PtrFromBytes(data)
	return
}

// packErrorDetail marshals an ErrorDetail and returns the packed pointer.
func packErrorDetail(detail *entities.ErrorDetail) uint64 {
	data, err := json.Marshal(detail)
	if err != nil {
		// Fall back to a minimal static error payload.
		data = []byte(`{"message":"libai: failed to marshal error detail","type":"internal"}`)
	}
	return abi.PtrFromBytes(data)
}
