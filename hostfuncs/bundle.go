package hostfuncs

import (
	"context"
	"log/slog"

	"github.com/michealparks/lib-ai/domain/entities"
)

// HostFuncBundle is a pre-configured set of related host capabilities.
// Bundles allow registering multiple handlers at once.
type HostFuncBundle interface {
	// Handlers returns a map of handler names to ByteHandler functions.
	Handlers() map[string]ByteHandler
}

// staticBundle implements HostFuncBundle with a fixed set of handlers.
type staticBundle struct {
	handlers map[string]ByteHandler
}

func (b *staticBundle) Handlers() map[string]ByteHandler {
	return b.handlers
}

// AlertSink receives alert messages surfaced by the guest.
// Message is delivered exactly as the guest sent it; implementations decide
// how to surface it.
type AlertSink interface {
	Alert(ctx context.Context, message string) error
}

// LogSink receives log entries recorded by the guest.
// Entry.Message is delivered exactly as the guest sent it.
type LogSink interface {
	Record(ctx context.Context, entry entities.LogWire) error
}

// bundleConfig holds the sinks backing the greeting capabilities.
type bundleConfig struct {
	alertSink AlertSink
	logSink   LogSink
}

// BundleOption configures the greeting bundle.
type BundleOption func(*bundleConfig)

// WithAlertSink sets the sink backing the alert capability.
func WithAlertSink(s AlertSink) BundleOption {
	return func(c *bundleConfig) {
		if s != nil {
			c.alertSink = s
		}
	}
}

// WithLogSink sets the sink backing the log_message capability.
func WithLogSink(s LogSink) BundleOption {
	return func(c *bundleConfig) {
		if s != nil {
			c.logSink = s
		}
	}
}

func defaultBundleConfig() bundleConfig {
	return bundleConfig{
		alertSink: &slogAlertSink{},
		logSink:   &slogLogSink{},
	}
}

// GreetingBundle returns the bundle with the two greeting capabilities:
// alert and log_message. Without options both are backed by slog sinks.
func GreetingBundle(opts ...BundleOption) HostFuncBundle {
	cfg := defaultBundleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &staticBundle{
		handlers: map[string]ByteHandler{
			"alert": NewNotifyHandler(func(ctx context.Context, req entities.AlertWire) error {
				return cfg.alertSink.Alert(ctx, req.Message)
			}),
			"log_message": NewNotifyHandler(func(ctx context.Context, req entities.LogWire) error {
				return cfg.logSink.Record(ctx, req)
			}),
		},
	}
}

// slogAlertSink surfaces guest alerts through the host's default logger.
type slogAlertSink struct{}

func (s *slogAlertSink) Alert(ctx context.Context, message string) error {
	slog.WarnContext(ctx, "guest alert", "message", message)
	return nil
}

// slogLogSink records guest log entries through the host's default logger
// at the level the guest reported.
type slogLogSink struct{}

func (s *slogLogSink) Record(ctx context.Context, entry entities.LogWire) error {
	attrs := make([]any, 0, 2+2*len(entry.Attrs))
	attrs = append(attrs, "guest_level", entry.Level)
	for _, a := range entry.Attrs {
		attrs = append(attrs, a.Key, a.Value)
	}
	slog.Log(ctx, guestLevel(entry.Level), entry.Message, attrs...)
	return nil
}

// guestLevel maps the wire level string to a slog.Level, defaulting to Info
// for bare messages and unknown levels.
func guestLevel(level string) slog.Level {
	switch level {
	case slog.LevelDebug.String():
		return slog.LevelDebug
	case slog.LevelWarn.String():
		return slog.LevelWarn
	case slog.LevelError.String():
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
