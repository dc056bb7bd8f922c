package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/michealparks/lib-ai/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyHandler_Success(t *testing.T) {
	var got string
	handler := NewNotifyHandler(func(_ context.Context, req entities.AlertWire) error {
		got = req.Message
		return nil
	})

	payload, err := json.Marshal(entities.AlertWire{Message: "Hello, World!"})
	require.NoError(t, err)

	resp, err := handler(context.Background(), payload)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "Hello, World!", got)
}

func TestNewNotifyHandler_MalformedPayload(t *testing.T) {
	handler := NewNotifyHandler(func(_ context.Context, _ entities.AlertWire) error {
		t.Fatal("handler must not run on malformed payload")
		return nil
	})

	resp, err := handler(context.Background(), []byte("{not json"))
	require.Error(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp.Error)
	assert.Equal(t, 400, errResp.Code)
}

func TestNewNotifyHandler_HandlerError(t *testing.T) {
	handler := NewNotifyHandler(func(_ context.Context, _ entities.AlertWire) error {
		return assert.AnError
	})

	payload, err := json.Marshal(entities.AlertWire{Message: "Hello, World!"})
	require.NoError(t, err)

	resp, err := handler(context.Background(), payload)
	assert.ErrorIs(t, err, assert.AnError)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "INTERNAL_ERROR", errResp.Error)
	assert.Equal(t, 500, errResp.Code)
}
