//go:build wasip1

// Package wasm provides infrastructure adapters that interface with the
// WASM host environment.
package wasm

// Define the host function signature for surfacing an alert.
//
//go:wasmimport libai_host alert
//nolint:revive // intentional snake_case to match WASM import convention
func host_alert(alertPacked uint64)

// Define the host function signature for recording a log message.
//
//go:wasmimport libai_host log_message
//nolint:revive // intentional snake_case to match WASM import convention
func host_log_message(messagePacked uint64)
