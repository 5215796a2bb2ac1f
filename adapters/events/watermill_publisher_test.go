package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubmitted(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(context.Background(), "esign.document.submitted")
	require.NoError(t, err)

	publisher := NewWatermillPublisher(pubSub)
	require.NoError(t, publisher.PublishSubmitted(context.Background(), "R1", "signer@example.com"))

	select {
	case msg := <-messages:
		var event SubmittedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, "R1", event.RequestID)
		assert.Equal(t, "signer@example.com", event.RecipientEmail)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
