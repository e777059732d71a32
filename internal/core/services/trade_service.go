package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/metrics"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type tradeService struct {
	BaseService
	tradeRepo     portsrepo.TradeRepositoryFacade
	customerRepo  portsrepo.CustomerReader
	metalRateRepo portsrepo.MetalRateReader
	cashBook      portssvc.CashBookPoster
	txManager     portsrepo.TransactionManager
}

// NewTradeService creates the bullion trade service.
func NewTradeService(
	tradeRepo portsrepo.TradeRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	metalRateRepo portsrepo.MetalRateReader,
	cashBook portssvc.CashBookPoster,
	txManager portsrepo.TransactionManager,
	opts ...BaseOption,
) portssvc.TradeSvcFacade {
	svc := &tradeService{
		tradeRepo:     tradeRepo,
		customerRepo:  customerRepo,
		metalRateRepo: metalRateRepo,
		cashBook:      cashBook,
		txManager:     txManager,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

// RecordTrade prices a buy or sell on its fine weight and posts the cash.
func (s *tradeService) RecordTrade(ctx context.Context, req dto.RecordTradeRequest, userID string) (*domain.Trade, error) {
	tradeDate, err := dto.ParseDate(req.TradeDate)
	if err != nil {
		return nil, err
	}

	trade := domain.Trade{
		TradeID:            uuid.NewString(),
		Metal:              req.Metal,
		Side:               req.Side,
		CustomerID:         req.CustomerID,
		TradeDate:          tradeDate,
		WeightGrams:        req.WeightGrams,
		PurityPct:          req.PurityPct,
		MakingChargesPaise: req.MakingChargesPaise,
		PaymentMode:        req.PaymentMode.OrDefault(),
		Notes:              req.Notes,
		AuditFields:        domain.NewAuditFields(userID, s.Now()),
	}
	if req.RatePerGramPaise != nil {
		trade.RatePerGramPaise = *req.RatePerGramPaise
	}
	if err := trade.Validate(); err != nil {
		return nil, err
	}

	if trade.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *trade.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to get customer %s: %w", *trade.CustomerID, err)
		}
	}

	if trade.RatePerGramPaise == 0 {
		rate, err := s.metalRateRepo.FindLatestRate(ctx, trade.Metal, trade.TradeDate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s on %s", domain.ErrTradeRateMissing, trade.Metal, req.TradeDate)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get %s rate: %w", trade.Metal, err)
		}
		trade.RatePerGramPaise = rate.RatePerGramPaise
	}

	trade.FineWeightGrams = accounting.FineWeight(trade.WeightGrams, trade.PurityPct)
	trade.AmountPaise = accounting.TradeAmount(trade.Side, trade.FineWeightGrams, trade.RatePerGramPaise, trade.MakingChargesPaise)
	if trade.AmountPaise <= 0 {
		return nil, domain.ErrAmountInvalid
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tradeRepo.SaveTrade(ctx, &trade); err != nil {
			return fmt.Errorf("failed to save trade: %w", err)
		}
		_, err := s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: trade.PaymentMode,
			EntryDate:   trade.TradeDate,
			Source:      domain.SourceTrade,
			Direction:   trade.Side.CashDirection(),
			AmountPaise: trade.AmountPaise,
			ReferenceID: trade.TradeID,
			CustomerID:  trade.CustomerID,
			Narration:   fmt.Sprintf("%s %s %sg (%s)", trade.Side, trade.Metal, trade.WeightGrams.String(), trade.CFID),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record trade", slog.String("metal", string(trade.Metal)), slog.String("side", string(trade.Side)))
		return nil, err
	}

	metrics.TradesRecorded.WithLabelValues(string(trade.Metal), string(trade.Side)).Inc()
	s.Publish(ctx, domain.EventTradeRecorded, trade.TradeID, userID, dto.ToTradeResponse(&trade))
	s.LogInfo(ctx, "Trade recorded",
		slog.String("trade_id", trade.TradeID),
		slog.String("cfid", trade.CFID),
		slog.Int64("amount_paise", trade.AmountPaise))
	return &trade, nil
}

func (s *tradeService) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	trade, err := s.tradeRepo.FindTradeByID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade %s: %w", tradeID, err)
	}
	return trade, nil
}

func (s *tradeService) ListTrades(ctx context.Context, params dto.ListTradesParams) ([]domain.Trade, error) {
	from, err := dto.ParseOptionalDate(params.From)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseOptionalDate(params.To)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.ErrDateRangeInvalid
	}

	trades, err := s.tradeRepo.ListTrades(ctx, domain.TradeFilter{
		Metal:         params.Metal,
		Side:          params.Side,
		CustomerID:    params.CustomerID,
		From:          from,
		To:            to,
		IncludeVoided: params.IncludeVoided,
		Limit:         params.Limit,
		Offset:        params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list trades")
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// VoidTrade cancels a trade and posts the opposite cash movement.
func (s *tradeService) VoidTrade(ctx context.Context, tradeID string, userID string) (*domain.Trade, error) {
	var trade *domain.Trade
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		trade, err = s.tradeRepo.FindTradeByIDForUpdate(ctx, tradeID)
		if err != nil {
			return fmt.Errorf("failed to lock trade %s: %w", tradeID, err)
		}
		if trade.IsVoided {
			return domain.ErrTradeAlreadyVoided
		}

		now := s.Now()
		if err := s.tradeRepo.MarkTradeVoided(ctx, tradeID, userID, now); err != nil {
			return fmt.Errorf("failed to void trade: %w", err)
		}
		trade.IsVoided = true
		trade.VoidedAt = &now
		trade.LastUpdatedAt = now
		trade.LastUpdatedBy = userID

		_, err = s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: trade.PaymentMode,
			EntryDate:   domain.DateOnly(now),
			Source:      domain.SourceTradeVoid,
			Direction:   trade.Side.CashDirection().Opposite(),
			AmountPaise: trade.AmountPaise,
			ReferenceID: trade.TradeID,
			CustomerID:  trade.CustomerID,
			Narration:   fmt.Sprintf("Trade %s voided", trade.CFID),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to void trade", slog.String("trade_id", tradeID))
		return nil, err
	}

	s.LogInfo(ctx, "Trade voided", slog.String("trade_id", tradeID))
	return trade, nil
}
