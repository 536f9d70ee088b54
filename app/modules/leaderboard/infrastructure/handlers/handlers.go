// Package leaderboardhandlers consumes score events and republishes the
// rebuilt leaderboard.
package leaderboardhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
)

// LeaderboardHandlers handles leaderboard-related events.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	metrics observability.LeaderboardMetrics
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers.
func NewLeaderboardHandlers(
	service leaderboardservice.Service,
	logger *slog.Logger,
	metrics observability.LeaderboardMetrics,
) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// wrap adds logging, correlation propagation, and payload unmarshalling
// around a handler function.
func wrap[P any](
	h *LeaderboardHandlers,
	handlerName string,
	handlerFunc func(ctx context.Context, payload P) ([]*message.Message, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := attr.ContextWithCorrelationID(msg.Context(), middleware.MessageCorrelationID(msg))
		startTime := time.Now()

		h.logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		var payload P
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			// A malformed payload can never succeed on redelivery; drop it.
			h.logger.ErrorContext(ctx, "Failed to unmarshal payload, dropping message",
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			return nil, nil
		}

		out, err := handlerFunc(ctx, payload)
		if err != nil {
			h.logger.ErrorContext(ctx, handlerName+" failed",
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			return nil, fmt.Errorf("%s: %w", handlerName, err)
		}

		h.logger.InfoContext(ctx, handlerName+" completed",
			attr.CorrelationIDFromMsg(msg),
			attr.Duration("took", time.Since(startTime)),
		)
		return out, nil
	}
}
