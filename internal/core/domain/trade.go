package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeSide is BUY when the shop buys metal from a customer and SELL when it sells.
type TradeSide string

const (
	Buy  TradeSide = "BUY"
	Sell TradeSide = "SELL"
)

// Valid reports whether s is a known side.
func (s TradeSide) Valid() bool {
	return s == Buy || s == Sell
}

// CashDirection is the cash-book direction the trade moves money in.
func (s TradeSide) CashDirection() EntryDirection {
	if s == Sell {
		return DirectionIn
	}
	return DirectionOut
}

// Trade is a gold or silver purchase or sale.
type Trade struct {
	TradeID            string          `json:"tradeID"`
	CFID               string          `json:"cfid"`
	Metal              Metal           `json:"metal"`
	Side               TradeSide       `json:"side"`
	CustomerID         *string         `json:"customerID,omitempty"` // Walk-in trades have no customer
	TradeDate          time.Time       `json:"tradeDate"`
	WeightGrams        decimal.Decimal `json:"weightGrams"`
	PurityPct          decimal.Decimal `json:"purityPct"`
	FineWeightGrams    decimal.Decimal `json:"fineWeightGrams"`
	RatePerGramPaise   int64           `json:"ratePerGramPaise"` // Fine metal rate
	MakingChargesPaise int64           `json:"makingChargesPaise"`
	AmountPaise        int64           `json:"amountPaise"`
	PaymentMode        PaymentMode     `json:"paymentMode"`
	Notes              string          `json:"notes"`
	IsVoided           bool            `json:"isVoided"`
	VoidedAt           *time.Time      `json:"voidedAt,omitempty"`
	AuditFields
}

// Validate checks the trade's own fields before any rate lookup happens.
func (t *Trade) Validate() error {
	if !t.Metal.Valid() {
		return fmt.Errorf("%w: %q", ErrMetalInvalid, t.Metal)
	}
	if !t.Side.Valid() {
		return fmt.Errorf("%w: %q", ErrTradeSideInvalid, t.Side)
	}
	if !t.WeightGrams.IsPositive() {
		return ErrTradeWeightInvalid
	}
	if !t.PurityPct.IsPositive() || t.PurityPct.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPurityInvalid
	}
	if t.MakingChargesPaise < 0 {
		return ErrAmountInvalid
	}
	if t.Side == Buy && t.MakingChargesPaise > 0 {
		return ErrMakingChargesOnBuy
	}
	if t.RatePerGramPaise < 0 {
		return ErrTradeRateMissing
	}
	if !t.PaymentMode.Valid() {
		return fmt.Errorf("%w: %q", ErrPaymentModeInvalid, t.PaymentMode)
	}
	return nil
}

// TradeFilter narrows trade listings.
type TradeFilter struct {
	Metal         Metal
	Side          TradeSide
	CustomerID    string
	From          *time.Time
	To            *time.Time
	IncludeVoided bool
	Limit         int
	Offset        int
}
