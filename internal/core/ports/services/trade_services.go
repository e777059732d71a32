package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// TradeSvcFacade defines operations for gold and silver trades
type TradeSvcFacade interface {
	// RecordTrade prices and stores a trade and posts its cash-book entry.
	RecordTrade(ctx context.Context, req dto.RecordTradeRequest, userID string) (*domain.Trade, error)
	GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error)
	ListTrades(ctx context.Context, params dto.ListTradesParams) ([]domain.Trade, error)

	// VoidTrade soft-deletes a trade and posts the reversing entry.
	VoidTrade(ctx context.Context, tradeID string, userID string) (*domain.Trade, error)
}
