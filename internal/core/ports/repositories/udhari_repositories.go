package repositories

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// UdhariReader defines read operations for udhari data
type UdhariReader interface {
	FindUdhariByID(ctx context.Context, udhariID string) (*domain.Udhari, error)
	ListUdhari(ctx context.Context, filter domain.UdhariFilter) ([]domain.Udhari, error)
	ListSettlements(ctx context.Context, udhariID string) ([]domain.UdhariSettlement, error)
}

// UdhariWriter defines write operations for udhari data
type UdhariWriter interface {
	// SaveUdhari persists a new IOU, assigning its CFID.
	SaveUdhari(ctx context.Context, udhari *domain.Udhari) error

	// FindUdhariByIDForUpdate loads and locks an IOU row.
	FindUdhariByIDForUpdate(ctx context.Context, udhariID string) (*domain.Udhari, error)

	// UpdateUdhariSettlement persists the settled amount and status.
	UpdateUdhariSettlement(ctx context.Context, udhari domain.Udhari) error

	SaveSettlement(ctx context.Context, settlement domain.UdhariSettlement) error
}

// UdhariRepositoryFacade combines all udhari-related repository interfaces
type UdhariRepositoryFacade interface {
	UdhariReader
	UdhariWriter
}
