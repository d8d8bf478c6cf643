package events

import (
	"context"
	"log/slog"

	"github.com/ib-77/results/internal/tenant"
)

// LoggingPublisher records events in the log instead of a broker.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) PublishUserUpdated(ctx context.Context, event tenant.UserUpdated) error {
	p.logger.InfoContext(ctx, "event published",
		"module", "events",
		"event_type", tenant.EventUserUpdated,
		"user_id", event.UserID,
	)
	return nil
}

func (p *LoggingPublisher) Close() error { return nil }
