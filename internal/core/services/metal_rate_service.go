package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type metalRateService struct {
	BaseService
	repo portsrepo.MetalRateRepositoryFacade
}

// NewMetalRateService creates the daily metal rate service.
func NewMetalRateService(repo portsrepo.MetalRateRepositoryFacade, opts ...BaseOption) portssvc.MetalRateSvcFacade {
	svc := &metalRateService{repo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.MetalRateSvcFacade = (*metalRateService)(nil)

// SetRate records the rate for a metal on a day, replacing any earlier
// figure for the same day.
func (s *metalRateService) SetRate(ctx context.Context, req dto.SetMetalRateRequest, userID string) (*domain.MetalRate, error) {
	if !req.Metal.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrMetalInvalid, req.Metal)
	}
	if req.RatePerGramPaise <= 0 {
		return nil, domain.ErrAmountInvalid
	}
	rateDate, err := dto.ParseDate(req.RateDate)
	if err != nil {
		return nil, err
	}

	rate, err := s.repo.UpsertRate(ctx, domain.MetalRate{
		RateID:           uuid.NewString(),
		Metal:            req.Metal,
		RateDate:         rateDate,
		RatePerGramPaise: req.RatePerGramPaise,
		AuditFields:      domain.NewAuditFields(userID, s.Now()),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save metal rate", slog.String("metal", string(req.Metal)), slog.String("rate_date", req.RateDate))
		return nil, fmt.Errorf("failed to set metal rate: %w", err)
	}

	s.LogInfo(ctx, "Metal rate set",
		slog.String("metal", string(rate.Metal)),
		slog.String("rate_date", dto.FormatDate(rate.RateDate)),
		slog.Int64("rate_per_gram_paise", rate.RatePerGramPaise))
	return rate, nil
}

// GetLatestRate returns the most recent rate on or before asOf.
func (s *metalRateService) GetLatestRate(ctx context.Context, metal domain.Metal, asOf time.Time) (*domain.MetalRate, error) {
	if !metal.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrMetalInvalid, metal)
	}
	rate, err := s.repo.FindLatestRate(ctx, metal, domain.DateOnly(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s rate: %w", metal, err)
	}
	return rate, nil
}

func (s *metalRateService) ListRates(ctx context.Context, params dto.ListMetalRatesParams) ([]domain.MetalRate, error) {
	if !params.Metal.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrMetalInvalid, params.Metal)
	}
	today := s.Today()
	to, err := dto.ParseDateOr(params.To, today)
	if err != nil {
		return nil, err
	}
	from, err := dto.ParseDateOr(params.From, to.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, domain.ErrDateRangeInvalid
	}

	rates, err := s.repo.ListRates(ctx, params.Metal, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list metal rates", slog.String("metal", string(params.Metal)))
		return nil, fmt.Errorf("failed to list metal rates: %w", err)
	}
	return rates, nil
}
