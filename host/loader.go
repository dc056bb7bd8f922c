package host

import (
	"fmt"
	"os"
)

// MaxModuleSize caps the size of a binding module read from disk.
const MaxModuleSize = 64 * 1024 * 1024 // 64 MB

// wasmMagic is the WebAssembly binary format preamble.
var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6D}

// LoadFile reads a binding module from disk and performs basic validation
// before the bytes reach the runtime: size cap and WASM magic header.
func LoadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat module: %w", err)
	}
	if info.Size() > MaxModuleSize {
		return nil, fmt.Errorf("module %s exceeds maximum size (%d bytes > %d)", path, info.Size(), MaxModuleSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module: %w", err)
	}

	if err := ValidateModuleBytes(data); err != nil {
		return nil, fmt.Errorf("module %s: %w", path, err)
	}

	return data, nil
}

// ValidateModuleBytes checks that data looks like a WASM binary.
func ValidateModuleBytes(data []byte) error {
	if len(data) < len(wasmMagic)+4 {
		return fmt.Errorf("not a WASM module: too short (%d bytes)", len(data))
	}
	for i, b := range wasmMagic {
		if data[i] != b {
			return fmt.Errorf("not a WASM module: bad magic header")
		}
	}
	return nil
}
