// Package entities provides the core domain types for the greeting binding:
// the wire structures that cross the WASM boundary and the binding manifest
// the host uses to discover what a guest module provides and requires.
package entities
