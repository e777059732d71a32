package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines the editable shop settings.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSettingsRequest struct {
	ShopName                 *string          `json:"shopName" binding:"omitempty,min=1,max=200"`
	Address                  *string          `json:"address"`
	Phone                    *string          `json:"phone" binding:"omitempty,max=20"`
	DefaultCashLoanRatePct   *decimal.Decimal `json:"defaultCashLoanRatePct" binding:"omitempty,ratepct"`
	DefaultGoldLoanRatePct   *decimal.Decimal `json:"defaultGoldLoanRatePct" binding:"omitempty,ratepct"`
	DefaultSilverLoanRatePct *decimal.Decimal `json:"defaultSilverLoanRatePct" binding:"omitempty,ratepct"`
	MaxLoanToValuePct        *decimal.Decimal `json:"maxLoanToValuePct" binding:"omitempty,gte=0,lte=100"`
}

// ShopSettingsResponse defines the data returned for the shop settings.
type ShopSettingsResponse struct {
	ShopName                 string          `json:"shopName"`
	Address                  string          `json:"address"`
	Phone                    string          `json:"phone"`
	DefaultCashLoanRatePct   decimal.Decimal `json:"defaultCashLoanRatePct"`
	DefaultGoldLoanRatePct   decimal.Decimal `json:"defaultGoldLoanRatePct"`
	DefaultSilverLoanRatePct decimal.Decimal `json:"defaultSilverLoanRatePct"`
	MaxLoanToValuePct        decimal.Decimal `json:"maxLoanToValuePct"`
	LastUpdatedAt            time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy            string          `json:"lastUpdatedBy"`
}

// ToShopSettingsResponse converts a domain.ShopSettings
func ToShopSettingsResponse(s *domain.ShopSettings) ShopSettingsResponse {
	return ShopSettingsResponse{
		ShopName:                 s.ShopName,
		Address:                  s.Address,
		Phone:                    s.Phone,
		DefaultCashLoanRatePct:   s.DefaultCashLoanRatePct,
		DefaultGoldLoanRatePct:   s.DefaultGoldLoanRatePct,
		DefaultSilverLoanRatePct: s.DefaultSilverLoanRatePct,
		MaxLoanToValuePct:        s.MaxLoanToValuePct,
		LastUpdatedAt:            s.LastUpdatedAt,
		LastUpdatedBy:            s.LastUpdatedBy,
	}
}
