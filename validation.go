package libai

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; creating a validator per call
// is expensive.
var validate = validator.New()

// HostConfig is the typed form of the host runtime configuration.
type HostConfig struct {
	// ModulePath is the filesystem path to the guest WASM module.
	ModulePath string `json:"module_path" validate:"required"`
	// Name is the input forwarded to the greet export.
	Name string `json:"name"`
	// LogLevel selects the host's slog level.
	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// MaxRequestSize caps guest capability payloads in bytes.
	MaxRequestSize int `json:"max_request_size" validate:"omitempty,gt=0"`
}

// ValidateConfig validates a Config map against a struct with validation
// tags. The map round-trips through JSON into targetStruct, then the
// validator runs on the result.
func ValidateConfig(config Config, targetStruct interface{}) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
