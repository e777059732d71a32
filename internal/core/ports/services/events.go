package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// EventPublisher delivers domain events to downstream consumers. Services
// publish only after the owning transaction has committed.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}
