package entities

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Capability kinds the binding can declare.
const (
	CapabilityAlert = "alert"
	CapabilityLog   = "log"
)

// Manifest describes a greeting binding to the host: identity, version,
// and the host capabilities the guest imports.
type Manifest struct {
	Name         string       `json:"name" validate:"required"`
	Version      string       `json:"version" validate:"required"`
	Description  string       `json:"description,omitempty"`
	SDKVersion   string       `json:"sdk_version,omitempty"`
	Capabilities []Capability `json:"capabilities" validate:"dive"`
}

// Capability declares a single host capability the binding calls.
type Capability struct {
	Kind string `json:"kind" validate:"required,oneof=alert log"`
}

// NewCapability creates a capability declaration of the given kind.
func NewCapability(kind string) Capability {
	return Capability{Kind: kind}
}

// validate is a package-level singleton; constructing a validator per call
// is expensive.
var validate = validator.New()

// Validate checks the manifest against its struct tags. The host rejects
// bindings whose manifests fail validation.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return nil
}
