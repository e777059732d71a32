package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopSettings is the single row of shop-wide configuration.
type ShopSettings struct {
	ShopName                 string          `json:"shopName"`
	Address                  string          `json:"address"`
	Phone                    string          `json:"phone"`
	DefaultCashLoanRatePct   decimal.Decimal `json:"defaultCashLoanRatePct"`
	DefaultGoldLoanRatePct   decimal.Decimal `json:"defaultGoldLoanRatePct"`
	DefaultSilverLoanRatePct decimal.Decimal `json:"defaultSilverLoanRatePct"`
	MaxLoanToValuePct        decimal.Decimal `json:"maxLoanToValuePct"` // Zero disables the check
	LastUpdatedAt            time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy            string          `json:"lastUpdatedBy"`
}

// DefaultRateFor returns the configured monthly rate for a loan kind.
func (s *ShopSettings) DefaultRateFor(kind LoanKind) decimal.Decimal {
	switch kind {
	case GoldLoan:
		return s.DefaultGoldLoanRatePct
	case SilverLoan:
		return s.DefaultSilverLoanRatePct
	}
	return s.DefaultCashLoanRatePct
}
