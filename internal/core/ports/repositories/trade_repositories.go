package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// TradeReader defines read operations for bullion trades
type TradeReader interface {
	FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error)
	ListTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error)
}

// TradeWriter defines write operations for bullion trades
type TradeWriter interface {
	// SaveTrade persists a new trade, assigning its CFID.
	SaveTrade(ctx context.Context, trade *domain.Trade) error

	// FindTradeByIDForUpdate loads and locks a trade row.
	FindTradeByIDForUpdate(ctx context.Context, tradeID string) (*domain.Trade, error)

	// MarkTradeVoided soft-deletes a trade.
	MarkTradeVoided(ctx context.Context, tradeID string, userID string, now time.Time) error
}

// TradeRepositoryFacade combines all trade-related repository interfaces
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
}
