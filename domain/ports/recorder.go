package ports

import "context"

// Recorder hands a message to the host's log capability for recording.
// Same delivery contract as Alerter: exact text, exactly once per call.
type Recorder interface {
	Record(ctx context.Context, message string) error
}
