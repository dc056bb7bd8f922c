// Package bindingtest provides a test harness for greeting bindings.
package bindingtest

import (
	"context"
	"sync"
	"testing"

	"github.com/michealparks/lib-ai/application/binding"
	"github.com/michealparks/lib-ai/greet"
)

// Recording captures every message a binding delivered through the
// alert and log capabilities during one test case.
type Recording struct {
	mu     sync.Mutex
	Alerts []string
	Logs   []string
}

// Alert implements ports.Alerter.
func (r *Recording) Alert(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Alerts = append(r.Alerts, message)
	return nil
}

// Record implements ports.Recorder.
func (r *Recording) Record(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Logs = append(r.Logs, message)
	return nil
}

// TestCase defines a test case for a binding. When Main is true the
// case invokes Main, otherwise Greet with Name as input.
type TestCase struct {
	Name     string
	Input    string
	Main     bool
	Validate func(t *testing.T, rec *Recording, err error)
}

// BindingFactory builds the binding under test with the harness's
// recording ports injected. binding.NewDefaultBinding satisfies it.
type BindingFactory func(opts ...greet.Option) binding.Binding

// DefaultFactory adapts binding.NewDefaultBinding to BindingFactory.
func DefaultFactory(opts ...greet.Option) binding.Binding {
	return binding.NewDefaultBinding(opts...)
}

// RunBindingTests runs a suite of tests against a binding built by factory.
func RunBindingTests(t *testing.T, factory BindingFactory, tests []TestCase) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			rec := &Recording{}
			b := factory(greet.WithAlerter(rec), greet.WithRecorder(rec))

			var err error
			if tc.Main {
				err = b.Main(context.Background())
			} else {
				err = b.Greet(context.Background(), tc.Input)
			}

			if tc.Validate != nil {
				tc.Validate(t, rec, err)
			}
		})
	}
}

// AssertAlerted asserts exactly one alert was delivered with message.
func AssertAlerted(t *testing.T, rec *Recording, message string) {
	t.Helper()
	if len(rec.Alerts) != 1 {
		t.Errorf("expected exactly one alert, got %d: %v", len(rec.Alerts), rec.Alerts)
		return
	}
	if rec.Alerts[0] != message {
		t.Errorf("alert message: expected %q, got %q", message, rec.Alerts[0])
	}
}

// AssertLogged asserts exactly one log message was delivered with message.
func AssertLogged(t *testing.T, rec *Recording, message string) {
	t.Helper()
	if len(rec.Logs) != 1 {
		t.Errorf("expected exactly one log message, got %d: %v", len(rec.Logs), rec.Logs)
		return
	}
	if rec.Logs[0] != message {
		t.Errorf("log message: expected %q, got %q", message, rec.Logs[0])
	}
}

// AssertNothingDelivered asserts no capability was invoked.
func AssertNothingDelivered(t *testing.T, rec *Recording) {
	t.Helper()
	if len(rec.Alerts) != 0 || len(rec.Logs) != 0 {
		t.Errorf("expected no deliveries, got alerts=%v logs=%v", rec.Alerts, rec.Logs)
	}
}
