package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

type shopService struct {
	BaseService
	repo portsrepo.ShopRepositoryFacade
}

// NewShopService creates the shop settings service.
func NewShopService(repo portsrepo.ShopRepositoryFacade, opts ...BaseOption) portssvc.ShopSvcFacade {
	svc := &shopService{repo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ShopSvcFacade = (*shopService)(nil)

func (s *shopService) GetSettings(ctx context.Context) (*domain.ShopSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shop settings")
		return nil, fmt.Errorf("failed to get shop settings: %w", err)
	}
	return settings, nil
}

func (s *shopService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.ShopSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.ShopName != nil {
		settings.ShopName = *req.ShopName
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.DefaultCashLoanRatePct != nil {
		settings.DefaultCashLoanRatePct = *req.DefaultCashLoanRatePct
	}
	if req.DefaultGoldLoanRatePct != nil {
		settings.DefaultGoldLoanRatePct = *req.DefaultGoldLoanRatePct
	}
	if req.DefaultSilverLoanRatePct != nil {
		settings.DefaultSilverLoanRatePct = *req.DefaultSilverLoanRatePct
	}
	if req.MaxLoanToValuePct != nil {
		settings.MaxLoanToValuePct = *req.MaxLoanToValuePct
	}
	if settings.DefaultCashLoanRatePct.IsNegative() || settings.DefaultGoldLoanRatePct.IsNegative() ||
		settings.DefaultSilverLoanRatePct.IsNegative() {
		return nil, domain.ErrLoanRateInvalid
	}
	settings.LastUpdatedAt = s.Now()
	settings.LastUpdatedBy = userID

	if err := s.repo.UpdateSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update shop settings")
		return nil, fmt.Errorf("failed to update shop settings: %w", err)
	}
	s.LogInfo(ctx, "Shop settings updated")
	return settings, nil
}
