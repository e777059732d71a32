package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// ShopSvcFacade defines operations on the shop settings
type ShopSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.ShopSettings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.ShopSettings, error)
}
