package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// MetalRateReader defines read operations for metal rates
type MetalRateReader interface {
	// FindLatestRate returns the most recent rate on or before asOf.
	FindLatestRate(ctx context.Context, metal domain.Metal, asOf time.Time) (*domain.MetalRate, error)

	// ListRates returns rates for a metal within [from, to], newest first.
	ListRates(ctx context.Context, metal domain.Metal, from, to time.Time) ([]domain.MetalRate, error)
}

// MetalRateWriter defines write operations for metal rates
type MetalRateWriter interface {
	// UpsertRate stores the rate for its metal and day, replacing any existing one.
	UpsertRate(ctx context.Context, rate domain.MetalRate) (*domain.MetalRate, error)
}

// MetalRateRepositoryFacade combines all metal-rate repository interfaces
type MetalRateRepositoryFacade interface {
	MetalRateReader
	MetalRateWriter
}
