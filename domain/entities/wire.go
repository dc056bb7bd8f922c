package entities

import "time"

// ContextWire is the JSON wire format for context.Context propagation.
// It travels with every capability payload so the host can honor deadlines
// and correlate calls. The shape is part of the ABI contract and must stay
// backward compatible.
type ContextWire struct {
	Deadline  *time.Time `json:"deadline,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	TimeoutMs int64      `json:"timeout_ms,omitempty"`
	Canceled  bool       `json:"canceled,omitempty"`
}

// AlertWire is the JSON wire format for an alert from guest to host.
// Message carries the exact text to surface; the envelope adds only
// transport metadata.
type AlertWire struct {
	Message string      `json:"message"`
	Context ContextWire `json:"context"`
}

// LogWire is the JSON wire format for a log message from guest to host.
// Message carries the exact text to record. Level, Attrs, and Timestamp are
// populated when the message originates from the guest's slog handler.
type LogWire struct {
	Timestamp time.Time   `json:"timestamp,omitempty"`
	Attrs     []LogAttr   `json:"attrs,omitempty"`
	Level     string      `json:"level,omitempty"`
	Message   string      `json:"message"`
	Context   ContextWire `json:"context"`
}

// LogAttr represents a single structured logging attribute on the wire.
type LogAttr struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value string `json:"value"`
}
