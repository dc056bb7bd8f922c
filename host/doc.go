// Package host provides the runtime environment for executing greeting
// binding WASM modules.
//
// It abstracts the underlying WASM engine (wazero), manages the binding
// lifecycle, and handles the low-level ABI interactions (memory
// allocation, data packing/unpacking). The host capabilities a binding
// imports (alert, log_message) are supplied through a hostfuncs registry.
package host
