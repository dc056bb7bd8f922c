// Package libai is the root of the greeting binding SDK. It holds the
// loosely typed Config map hosts pass around and the helpers for reading
// and validating it.
package libai

import "fmt"

// Config represents host runtime configuration as decoded from JSON or
// flags. Values keep their decoded dynamic types.
type Config map[string]interface{}

// ConfigError reports a missing or mistyped configuration field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GetString safely extracts a string value from Config.
// Returns the value and true if found and is a string, otherwise returns empty string and false.
func GetString(config Config, key string) (string, bool) {
	v, ok := config[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt safely extracts an int value from Config.
// Handles both int and float64 (JSON numbers are often decoded as float64).
func GetInt(config Config, key string) (int, bool) {
	v, ok := config[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetBool safely extracts a bool value from Config.
func GetBool(config Config, key string) (bool, bool) {
	v, ok := config[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// MustGetString extracts a string value from Config or returns an error.
// Use this when the field is required.
func MustGetString(config Config, key string) (string, error) {
	s, ok := GetString(config, key)
	if !ok {
		return "", &ConfigError{
			Field: key,
			Err:   fmt.Errorf("required string field %q is missing or not a string", key),
		}
	}
	return s, nil
}

// GetStringDefault extracts a string value from Config with a default.
func GetStringDefault(config Config, key, defaultValue string) string {
	s, ok := GetString(config, key)
	if !ok {
		return defaultValue
	}
	return s
}

// GetIntDefault extracts an int value from Config with a default.
func GetIntDefault(config Config, key string, defaultValue int) int {
	i, ok := GetInt(config, key)
	if !ok {
		return defaultValue
	}
	return i
}

// GetBoolDefault extracts a bool value from Config with a default.
func GetBoolDefault(config Config, key string, defaultValue bool) bool {
	b, ok := GetBool(config, key)
	if !ok {
		return defaultValue
	}
	return b
}
