// Package attr provides slog attribute helpers shared by every module so log
// fields stay consistently named across services and handlers.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
)

type correlationIDKey struct{}

// ContextWithCorrelationID stores a correlation ID on the context so service
// code can log it without threading the raw message around.
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// ExtractCorrelationID returns the correlation ID attribute for the context,
// or an empty value when none was set.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return slog.String("correlation_id", id)
}

// CorrelationIDFromMsg reads the watermill correlation metadata off a message.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Time(key string, value time.Time) slog.Attr { return slog.Time(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

// UUID renders uuid values as strings so they stay greppable in log output.
func UUID(key string, id uuid.UUID) slog.Attr { return slog.String(key, id.String()) }
