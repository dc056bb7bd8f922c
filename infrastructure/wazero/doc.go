// Package wazero registers the greeting capabilities with the wazero
// runtime.
//
// This package bridges the pure Go capability handlers in hostfuncs with
// the wazero WebAssembly runtime. It handles:
//
//   - Converting between packed i64 pointer+length format and byte slices
//   - Reading capability payloads from guest memory
//   - Registering handlers with the wazero host module builder
//
// The greeting capabilities (alert, log_message) are fire-and-forget, so
// every registry handler is exported as a void i64 function; handlers that
// need the packed i64 request/response pattern register as custom handlers.
//
// # Basic Usage
//
//	registry, _ := hostfuncs.NewRegistry(
//	    hostfuncs.WithBundle(hostfuncs.GreetingBundle()),
//	)
//	err := wazero.RegisterWithRuntime(ctx, runtime, registry,
//	    wazero.WithModuleName("libai_host"),
//	)
package wazero
