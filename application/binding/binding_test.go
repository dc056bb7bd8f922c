package binding

import (
	"context"
	"testing"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/michealparks/lib-ai/greet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink records messages for both greet ports.
type captureSink struct {
	alerts  []string
	records []string
}

func (c *captureSink) Alert(_ context.Context, message string) error {
	c.alerts = append(c.alerts, message)
	return nil
}

func (c *captureSink) Record(_ context.Context, message string) error {
	c.records = append(c.records, message)
	return nil
}

func TestDefaultBinding_Manifest(t *testing.T) {
	b := NewDefaultBinding()

	m, err := b.Manifest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "lib-ai", m.Name)
	assert.Equal(t, Version, m.Version)
	require.Len(t, m.Capabilities, 2)
	assert.Equal(t, entities.CapabilityAlert, m.Capabilities[0].Kind)
	assert.Equal(t, entities.CapabilityLog, m.Capabilities[1].Kind)
	assert.NoError(t, m.Validate())
}

func TestDefaultBinding_Greet(t *testing.T) {
	sink := &captureSink{}
	b := NewDefaultBinding(greet.WithAlerter(sink), greet.WithRecorder(sink))

	err := b.Greet(context.Background(), "World")
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello, World!"}, sink.alerts)
	assert.Empty(t, sink.records)
}

func TestDefaultBinding_Main(t *testing.T) {
	sink := &captureSink{}
	b := NewDefaultBinding(greet.WithAlerter(sink), greet.WithRecorder(sink))

	err := b.Main(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello, world!"}, sink.records)
	assert.Empty(t, sink.alerts)
}

func TestRegister_SecondCallIgnored(t *testing.T) {
	t.Cleanup(func() { userBinding = nil })

	first := &StubBinding{}
	Register(first)
	Register(NewDefaultBinding())

	assert.Same(t, Binding(first), userBinding)
}

func TestStubBinding(t *testing.T) {
	s := &StubBinding{}

	m, err := s.Manifest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stub", m.Name)

	assert.NoError(t, s.Greet(context.Background(), "anyone"))
	assert.NoError(t, s.Main(context.Background()))
}
