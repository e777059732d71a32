package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// ReportingRepository defines aggregate queries for reports
type ReportingRepository interface {
	// GetCashFlow totals cash-book entries dated within [from, to] by source and direction.
	GetCashFlow(ctx context.Context, from, to time.Time) ([]domain.CashFlowLine, error)

	// GetInterestIncome totals interest collected within [from, to] by loan kind.
	GetInterestIncome(ctx context.Context, from, to time.Time) ([]domain.InterestIncomeLine, error)

	// GetOpenUdhariTotals returns outstanding udhari by direction and the overdue count as of a day.
	GetOpenUdhariTotals(ctx context.Context, asOf time.Time) (given int64, taken int64, overdue int, err error)
}
