package repositories

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// ShopRepositoryFacade reads and writes the single shop settings row.
type ShopRepositoryFacade interface {
	GetSettings(ctx context.Context) (*domain.ShopSettings, error)
	UpdateSettings(ctx context.Context, settings domain.ShopSettings) error
}
