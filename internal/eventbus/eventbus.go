// Package eventbus wraps watermill's in-process pub/sub. Score submissions and
// leaderboard refreshes are decoupled through it so the write path never waits
// on recomputation.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventBus is the publish/subscribe surface handed to services.
type EventBus interface {
	Publish(topic string, msgs ...*message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}

// Bus is the gochannel-backed EventBus.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// New builds an in-process bus. Subscribers registered after a publish do not
// see earlier messages; handlers must be wired before the HTTP server starts.
func New(logger *slog.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
	return &Bus{pubsub: pubsub, logger: logger}
}

func (b *Bus) Publish(topic string, msgs ...*message.Message) error {
	return b.pubsub.Publish(topic, msgs...)
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Publisher exposes the underlying publisher for watermill router wiring.
func (b *Bus) Publisher() message.Publisher { return b.pubsub }

// Subscriber exposes the underlying subscriber for watermill router wiring.
func (b *Bus) Subscriber() message.Subscriber { return b.pubsub }

// NewMessage marshals a payload into a watermill message and stamps it with a
// fresh UUID plus the given correlation ID.
func NewMessage(correlationID string, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	if correlationID != "" {
		middleware.SetCorrelationID(correlationID, msg)
	}
	return msg, nil
}
