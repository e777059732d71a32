// Package analytics forwards product usage events to PostHog. A client
// built without an API key is a no-op.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is the PostHog EU cloud.
const DefaultEndpoint = "https://eu.i.posthog.com"

type enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// Client wraps posthog.Client so callers need not care whether it is configured.
type Client struct {
	client enqueuer
	logger *slog.Logger
}

// NewClient connects to PostHog when apiKey is set.
func NewClient(apiKey, endpoint string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, usage analytics disabled")
		return &Client{logger: logger}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to create posthog client, usage analytics disabled", slog.String("error", err.Error()))
		return &Client{logger: logger}
	}
	logger.Info("Posthog client initialised", slog.String("endpoint", endpoint))
	return &Client{client: client, logger: logger}
}

// Enabled reports whether events are actually sent.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Capture queues one event for distinctID.
func (c *Client) Capture(distinctID, event string, properties map[string]any) {
	if !c.Enabled() {
		return
	}
	err := c.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && c.logger != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (c *Client) Close() {
	if !c.Enabled() {
		return
	}
	if err := c.client.Close(); err != nil && c.logger != nil {
		c.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
