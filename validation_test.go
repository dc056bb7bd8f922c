package libai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid full config",
			config: Config{
				"module_path":      "binding.wasm",
				"name":             "Ada",
				"log_level":        "debug",
				"max_request_size": 4096,
			},
		},
		{
			name:   "minimal config",
			config: Config{"module_path": "binding.wasm"},
		},
		{
			name:    "missing module path",
			config:  Config{"name": "Ada"},
			wantErr: true,
		},
		{
			name: "bad log level",
			config: Config{
				"module_path": "binding.wasm",
				"log_level":   "loud",
			},
			wantErr: true,
		},
		{
			name: "non-positive request size",
			config: Config{
				"module_path":      "binding.wasm",
				"max_request_size": 0.0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hc HostConfig
			err := ValidateConfig(tt.config, &hc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConfig_PopulatesStruct(t *testing.T) {
	var hc HostConfig
	err := ValidateConfig(Config{
		"module_path": "out/binding.wasm",
		"name":        "Grace",
	}, &hc)
	require.NoError(t, err)

	assert.Equal(t, "out/binding.wasm", hc.ModulePath)
	assert.Equal(t, "Grace", hc.Name)
	assert.Empty(t, hc.LogLevel)
}
