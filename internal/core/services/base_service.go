package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher portssvc.EventPublisher
	Clock     func() time.Time
}

// BaseOption configures the shared parts of a service.
type BaseOption func(*BaseService)

// WithPublisher sets where domain events go.
func WithPublisher(p portssvc.EventPublisher) BaseOption {
	return func(s *BaseService) {
		s.Publisher = p
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) BaseOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func (s *BaseService) apply(opts []BaseOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// Now returns the current UTC time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Today returns the current calendar day.
func (s *BaseService) Today() time.Time {
	return domain.DateOnly(s.Now())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Publish emits a domain event. Failures are logged and never fail the
// operation, which has already committed.
func (s *BaseService) Publish(ctx context.Context, eventType domain.EventType, aggregateID, actorID string, payload any) {
	if s.Publisher == nil {
		return
	}
	event := domain.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  s.Now(),
		ActorID:     actorID,
		Payload:     payload,
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish domain event",
			slog.String("event_type", string(eventType)),
			slog.String("aggregate_id", aggregateID))
	}
}
