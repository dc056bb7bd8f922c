package entities

import "fmt"

// ErrorDetail provides structured error information across the boundary.
// Error Types: "panic", "config", "validation", "capability", "internal"
type ErrorDetail struct {
	// Message is a human-readable error description.
	Message string `json:"message"`

	// Type categorizes the error.
	Type string `json:"type"`

	// Stack contains the stack trace for panic errors.
	Stack []byte `json:"stack,omitempty"`
}

// Error implements the error interface.
func (e *ErrorDetail) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return e.Message
}

// ToErrorDetail converts a Go error to a structured ErrorDetail.
// A nil error yields nil.
func ToErrorDetail(err error) *ErrorDetail {
	if err == nil {
		return nil
	}
	var detail *ErrorDetail
	if d, ok := err.(*ErrorDetail); ok {
		detail = d
	} else {
		detail = &ErrorDetail{Message: err.Error(), Type: "internal"}
	}
	return detail
}
