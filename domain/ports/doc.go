// Package ports defines the guest-side interfaces for host capabilities.
// The infrastructure/wasm package provides the real WASM adapters; tests
// inject recording implementations instead.
package ports
