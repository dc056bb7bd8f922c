// Package hostfuncs provides pure Go implementations of the host
// capabilities the greeting binding imports (alert, log_message).
// These implementations have NO WASM runtime dependencies; any WASM host
// can register them, infrastructure/wazero adapts them to wazero.
package hostfuncs
