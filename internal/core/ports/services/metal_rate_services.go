package services

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// MetalRateSvcFacade defines operations for daily metal rates
type MetalRateSvcFacade interface {
	SetRate(ctx context.Context, req dto.SetMetalRateRequest, userID string) (*domain.MetalRate, error)

	// GetLatestRate returns the rate in force on asOf.
	GetLatestRate(ctx context.Context, metal domain.Metal, asOf time.Time) (*domain.MetalRate, error)
	ListRates(ctx context.Context, params dto.ListMetalRatesParams) ([]domain.MetalRate, error)
}
