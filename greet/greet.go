// Package greet implements the two operations the greeting binding exposes
// to its host: Greet, which surfaces a formatted greeting through the alert
// capability, and World, which records a fixed message through the log
// capability.
package greet

import (
	"context"
	"fmt"

	"github.com/michealparks/lib-ai/domain/ports"
	"github.com/michealparks/lib-ai/infrastructure/wasm"
)

// WorldMessage is the exact text World hands to the log capability.
const WorldMessage = "Hello, world!"

// runConfig holds the capability ports used by the operations.
// This struct is unexported to enforce the functional options pattern.
type runConfig struct {
	alerter  ports.Alerter
	recorder ports.Recorder
}

// defaultRunConfig returns the WASM-backed adapters.
func defaultRunConfig() runConfig {
	return runConfig{
		alerter:  wasm.NewAlertAdapter(),
		recorder: wasm.NewRecordAdapter(),
	}
}

// Option is a functional option for configuring the greeting operations.
// Use With* functions to create options.
type Option func(*runConfig)

// WithAlerter sets the alert port to use.
// This is useful for injecting recorders during testing.
func WithAlerter(a ports.Alerter) Option {
	return func(c *runConfig) {
		if a != nil {
			c.alerter = a
		}
	}
}

// WithRecorder sets the log port to use.
// This is useful for injecting recorders during testing.
func WithRecorder(r ports.Recorder) Option {
	return func(c *runConfig) {
		if r != nil {
			c.recorder = r
		}
	}
}

// Message returns the greeting text for name. The empty name is valid and
// yields "Hello, !".
func Message(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Greet formats the greeting for name and surfaces it through the alert
// capability, exactly once per call. The host owns every side effect
// beyond that single delivery.
func Greet(ctx context.Context, name string, opts ...Option) error {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.alerter.Alert(ctx, Message(name))
}

// World records WorldMessage through the log capability, exactly once per
// call. The host invokes this via the binding's main entry point.
func World(ctx context.Context, opts ...Option) error {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.recorder.Record(ctx, WorldMessage)
}
