// telemetry.go wraps the posthog client so callers never have to care
// whether telemetry is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// TelemetryClient is a nil-safe wrapper around posthog.Client. A client built
// without an API key silently drops every event.
type TelemetryClient struct {
	client posthog.Client
	logger *slog.Logger
}

func NewTelemetryClient(apiKey string, logger *slog.Logger) *TelemetryClient {
	if apiKey == "" {
		logger.Warn("Telemetry API key is empty, events will be dropped.")
		return &TelemetryClient{}
	}
	wrapper := TelemetryClient{logger: logger}
	wrapper.client, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return &wrapper
}

func (t *TelemetryClient) IsInitialized() bool {
	return t.client != nil
}

func (t *TelemetryClient) Enqueue(distinctID string, event string, properties map[string]any) {
	if t.client == nil {
		return
	}
	if t.logger != nil {
		t.logger.Debug("Enqueueing telemetry event", slog.String("distinct_id", distinctID), slog.String("event", event))
	}
	t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

func (t *TelemetryClient) Close() {
	if t.client == nil {
		return
	}
	t.client.Close()
}
