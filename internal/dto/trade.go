package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTradeRequest defines the data needed to record a bullion trade.
type RecordTradeRequest struct {
	Metal              domain.Metal       `json:"metal" binding:"required,metal"`
	Side               domain.TradeSide   `json:"side" binding:"required,oneof=BUY SELL"`
	CustomerID         *string            `json:"customerID" binding:"omitempty,uuid"`
	TradeDate          string             `json:"tradeDate" binding:"required,datetime=2006-01-02"`
	WeightGrams        decimal.Decimal    `json:"weightGrams" binding:"required,gt=0"`
	PurityPct          decimal.Decimal    `json:"purityPct" binding:"required,purity"`
	RatePerGramPaise   *int64             `json:"ratePerGramPaise" binding:"omitempty,gt=0"` // Latest recorded rate when omitted
	MakingChargesPaise int64              `json:"makingChargesPaise" binding:"gte=0"`
	PaymentMode        domain.PaymentMode `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes              string             `json:"notes"`
}

// ListTradesParams defines query parameters for listing trades.
type ListTradesParams struct {
	Metal         domain.Metal     `form:"metal" binding:"omitempty,metal"`
	Side          domain.TradeSide `form:"side" binding:"omitempty,oneof=BUY SELL"`
	CustomerID    string           `form:"customerID" binding:"omitempty,uuid"`
	From          string           `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string           `form:"to" binding:"omitempty,datetime=2006-01-02"`
	IncludeVoided bool             `form:"includeVoided"`
	Limit         int              `form:"limit,default=20" binding:"min=1,max=200"`
	Offset        int              `form:"offset,default=0" binding:"min=0"`
}

// TradeResponse defines the data returned for a trade.
type TradeResponse struct {
	TradeID            string             `json:"tradeID"`
	CFID               string             `json:"cfid"`
	Metal              domain.Metal       `json:"metal"`
	Side               domain.TradeSide   `json:"side"`
	CustomerID         *string            `json:"customerID,omitempty"`
	TradeDate          string             `json:"tradeDate"`
	WeightGrams        decimal.Decimal    `json:"weightGrams"`
	PurityPct          decimal.Decimal    `json:"purityPct"`
	FineWeightGrams    decimal.Decimal    `json:"fineWeightGrams"`
	RatePerGramPaise   int64              `json:"ratePerGramPaise"`
	MakingChargesPaise int64              `json:"makingChargesPaise"`
	AmountPaise        int64              `json:"amountPaise"`
	PaymentMode        domain.PaymentMode `json:"paymentMode"`
	Notes              string             `json:"notes"`
	IsVoided           bool               `json:"isVoided"`
	VoidedAt           *time.Time         `json:"voidedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
}

// ListTradesResponse wraps the list of trades.
type ListTradesResponse struct {
	Trades []TradeResponse `json:"trades"`
}

// ToTradeResponse converts a domain.Trade to TradeResponse DTO
func ToTradeResponse(t *domain.Trade) TradeResponse {
	return TradeResponse{
		TradeID:            t.TradeID,
		CFID:               t.CFID,
		Metal:              t.Metal,
		Side:               t.Side,
		CustomerID:         t.CustomerID,
		TradeDate:          FormatDate(t.TradeDate),
		WeightGrams:        t.WeightGrams,
		PurityPct:          t.PurityPct,
		FineWeightGrams:    t.FineWeightGrams,
		RatePerGramPaise:   t.RatePerGramPaise,
		MakingChargesPaise: t.MakingChargesPaise,
		AmountPaise:        t.AmountPaise,
		PaymentMode:        t.PaymentMode,
		Notes:              t.Notes,
		IsVoided:           t.IsVoided,
		VoidedAt:           t.VoidedAt,
		CreatedAt:          t.CreatedAt,
		CreatedBy:          t.CreatedBy,
	}
}

// ToListTradesResponse converts a slice of domain.Trade
func ToListTradesResponse(trades []domain.Trade) ListTradesResponse {
	res := make([]TradeResponse, len(trades))
	for i := range trades {
		res[i] = ToTradeResponse(&trades[i])
	}
	return ListTradesResponse{Trades: res}
}
