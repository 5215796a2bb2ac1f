package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// SubmittedEvent announces that a signature request was submitted.
type SubmittedEvent struct {
	RequestID      string `json:"request_id"`
	RecipientEmail string `json:"recipient_email"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{
		publisher: publisher,
		topic:     "esign.document.submitted",
	}
}

// PublishSubmitted publishes a submission event
func (p *WatermillPublisher) PublishSubmitted(ctx context.Context, requestID string, recipientEmail string) error {
	event := SubmittedEvent{
		RequestID:      requestID,
		RecipientEmail: recipientEmail,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(requestID, payload)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
