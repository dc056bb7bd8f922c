package wasm

import "errors"

// ErrNotWASM is returned by the capability adapters on non-wasip1 builds,
// where no host imports exist. Native callers inject their own ports
// instead of relying on these adapters.
var ErrNotWASM = errors.New("WASM host imports are not available in native builds")
