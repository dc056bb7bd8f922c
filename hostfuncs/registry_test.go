package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, payload []byte) ([]byte, error) {
	return payload, nil
}

func TestNewRegistry_Empty(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	assert.Empty(t, registry.Names())
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry(
		WithByteHandler("alert", echoHandler),
		WithByteHandler("alert", echoHandler),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate handler name")
}

func TestNewRegistry_EmptyName(t *testing.T) {
	_, err := NewRegistry(WithByteHandler("", echoHandler))
	assert.Error(t, err)
}

func TestRegistry_Invoke(t *testing.T) {
	registry, err := NewRegistry(WithByteHandler("echo", echoHandler))
	require.NoError(t, err)

	resp, err := registry.Invoke(context.Background(), "echo", []byte(`{"x":1}`))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":1}`), resp)
}

func TestRegistry_InvokeUnknownName(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	resp, err := registry.Invoke(context.Background(), "nope", nil)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error)
	assert.Equal(t, 404, errResp.Code)
}

func TestRegistry_HasAndNames(t *testing.T) {
	registry, err := NewRegistry(
		WithByteHandler("log_message", echoHandler),
		WithByteHandler("alert", echoHandler),
	)
	require.NoError(t, err)

	assert.True(t, registry.Has("alert"))
	assert.False(t, registry.Has("exec"))
	assert.Equal(t, []string{"alert", "log_message"}, registry.Names())
}

func TestRegistry_MiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next ByteHandler) ByteHandler {
			return func(ctx context.Context, payload []byte) ([]byte, error) {
				order = append(order, name)
				return next(ctx, payload)
			}
		}
	}

	registry, err := NewRegistry(
		WithMiddleware(mark("outer"), mark("inner")),
		WithByteHandler("echo", echoHandler),
	)
	require.NoError(t, err)

	_, err = registry.Invoke(context.Background(), "echo", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRegistry_HandlerSeesFunctionName(t *testing.T) {
	var seen string
	handler := func(ctx context.Context, _ []byte) ([]byte, error) {
		if hc, ok := ctx.(HostContext); ok {
			seen = hc.FunctionName()
		}
		return nil, nil
	}

	registry, err := NewRegistry(WithByteHandler("alert", handler))
	require.NoError(t, err)

	_, err = registry.Invoke(context.Background(), "alert", nil)
	require.NoError(t, err)
	assert.Equal(t, "alert", seen)
}
