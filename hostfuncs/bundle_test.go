package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSinks records everything delivered to the greeting capabilities.
type captureSinks struct {
	alerts  []string
	entries []entities.LogWire
}

func (c *captureSinks) Alert(_ context.Context, message string) error {
	c.alerts = append(c.alerts, message)
	return nil
}

func (c *captureSinks) Record(_ context.Context, entry entities.LogWire) error {
	c.entries = append(c.entries, entry)
	return nil
}

func greetingRegistry(t *testing.T, sinks *captureSinks) *HandlerRegistry {
	t.Helper()
	registry, err := NewRegistry(
		WithMiddleware(PanicRecoveryMiddleware()),
		WithBundle(GreetingBundle(WithAlertSink(sinks), WithLogSink(sinks))),
	)
	require.NoError(t, err)
	return registry
}

func TestGreetingBundle_Alert(t *testing.T) {
	sinks := &captureSinks{}
	registry := greetingRegistry(t, sinks)

	payload, err := json.Marshal(entities.AlertWire{Message: "Hello, World!"})
	require.NoError(t, err)

	resp, err := registry.Invoke(context.Background(), "alert", payload)
	require.NoError(t, err)
	assert.Nil(t, resp)

	require.Len(t, sinks.alerts, 1)
	assert.Equal(t, "Hello, World!", sinks.alerts[0])
	assert.Empty(t, sinks.entries)
}

func TestGreetingBundle_AlertDeliveredPerCall(t *testing.T) {
	sinks := &captureSinks{}
	registry := greetingRegistry(t, sinks)

	payload, err := json.Marshal(entities.AlertWire{Message: "Hello, World!"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := registry.Invoke(context.Background(), "alert", payload)
		require.NoError(t, err)
	}

	// Identical payloads are never coalesced.
	assert.Len(t, sinks.alerts, 3)
}

func TestGreetingBundle_LogMessage(t *testing.T) {
	sinks := &captureSinks{}
	registry := greetingRegistry(t, sinks)

	payload, err := json.Marshal(entities.LogWire{Message: "Hello, world!"})
	require.NoError(t, err)

	resp, err := registry.Invoke(context.Background(), "log_message", payload)
	require.NoError(t, err)
	assert.Nil(t, resp)

	require.Len(t, sinks.entries, 1)
	assert.Equal(t, "Hello, world!", sinks.entries[0].Message)
	assert.Empty(t, sinks.alerts)
}

func TestGreetingBundle_StructuredLogEntry(t *testing.T) {
	sinks := &captureSinks{}
	registry := greetingRegistry(t, sinks)

	entry := entities.LogWire{
		Message: "binding started",
		Level:   "INFO",
		Attrs:   []entities.LogAttr{{Key: "version", Type: "string", Value: "0.1.0"}},
	}
	payload, err := json.Marshal(entry)
	require.NoError(t, err)

	_, err = registry.Invoke(context.Background(), "log_message", payload)
	require.NoError(t, err)

	require.Len(t, sinks.entries, 1)
	assert.Equal(t, entry.Attrs, sinks.entries[0].Attrs)
}

func TestGreetingBundle_MalformedPayload(t *testing.T) {
	sinks := &captureSinks{}
	registry := greetingRegistry(t, sinks)

	resp, err := registry.Invoke(context.Background(), "alert", []byte("{not json"))
	require.Error(t, err)
	assert.Empty(t, sinks.alerts)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp.Error)
}

func TestGreetingBundle_DefaultSinks(t *testing.T) {
	registry, err := NewRegistry(WithBundle(GreetingBundle()))
	require.NoError(t, err)

	payload, err := json.Marshal(entities.AlertWire{Message: "Hello, World!"})
	require.NoError(t, err)

	// Default sinks log through slog and never fail.
	_, err = registry.Invoke(context.Background(), "alert", payload)
	assert.NoError(t, err)
}

func TestGuestLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", guestLevel("DEBUG").String())
	assert.Equal(t, "WARN", guestLevel("WARN").String())
	assert.Equal(t, "ERROR", guestLevel("ERROR").String())
	assert.Equal(t, "INFO", guestLevel("INFO").String())
	assert.Equal(t, "INFO", guestLevel("").String())
	assert.Equal(t, "INFO", guestLevel("bogus").String())
}
