package accounting

import (
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WeightPlaces is the precision weights are kept at (milligrams).
const WeightPlaces = 3

// FineWeight is the pure metal content of an item.
func FineWeight(weightGrams, purityPct decimal.Decimal) decimal.Decimal {
	return weightGrams.Mul(purityPct).Div(hundred).Round(WeightPlaces)
}

// MetalValue prices fine metal at a per-gram rate, rounded to whole paise.
func MetalValue(fineWeightGrams decimal.Decimal, ratePerGramPaise int64) int64 {
	return fineWeightGrams.Mul(decimal.NewFromInt(ratePerGramPaise)).Round(0).IntPart()
}

// TradeAmount is the money that changes hands for a trade. Making charges are
// only added on sales.
func TradeAmount(side domain.TradeSide, fineWeightGrams decimal.Decimal, ratePerGramPaise, makingChargesPaise int64) int64 {
	amount := MetalValue(fineWeightGrams, ratePerGramPaise)
	if side == domain.Sell {
		amount += makingChargesPaise
	}
	return amount
}

// MaxPrincipal is the largest principal allowed against appraisedPaise of
// collateral at the given loan-to-value percentage, rounded down.
func MaxPrincipal(appraisedPaise int64, maxLoanToValuePct decimal.Decimal) int64 {
	return decimal.NewFromInt(appraisedPaise).Mul(maxLoanToValuePct).Div(hundred).Floor().IntPart()
}

// SignedAmount applies the cash-book sign: IN is positive, OUT negative.
func SignedAmount(direction domain.EntryDirection, amountPaise int64) int64 {
	if direction == domain.DirectionOut {
		return -amountPaise
	}
	return amountPaise
}
