package ports

import "context"

// EventPublisher publishes events to notify other systems
type EventPublisher interface {
	PublishSubmitted(ctx context.Context, requestID string, recipientEmail string) error
}
