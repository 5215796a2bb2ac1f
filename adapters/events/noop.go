package events

import (
	"context"

	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// NoopPublisher discards events. Used when no message broker is
// configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event.
func NewNoopPublisher() ports.EventPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishSubmitted(ctx context.Context, requestID string, recipientEmail string) error {
	return nil
}
