package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// UdhariReaderSvc defines read operations for udhari
type UdhariReaderSvc interface {
	GetUdhari(ctx context.Context, udhariID string) (*domain.Udhari, error)
	ListUdhari(ctx context.Context, params dto.ListUdhariParams) ([]domain.Udhari, error)
	ListSettlements(ctx context.Context, udhariID string) ([]domain.UdhariSettlement, error)
}

// UdhariWriterSvc defines write operations for udhari
type UdhariWriterSvc interface {
	CreateUdhari(ctx context.Context, req dto.CreateUdhariRequest, userID string) (*domain.Udhari, error)
	SettleUdhari(ctx context.Context, udhariID string, req dto.SettleUdhariRequest, userID string) (*domain.UdhariSettlement, *domain.Udhari, error)
}

// UdhariSvcFacade combines all udhari-related service interfaces
type UdhariSvcFacade interface {
	UdhariReaderSvc
	UdhariWriterSvc
}
