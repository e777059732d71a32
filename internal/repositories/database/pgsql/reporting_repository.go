package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetCashFlow totals ledger entries by source and direction across both accounts.
func (r *reportingRepository) GetCashFlow(ctx context.Context, from, to time.Time) ([]domain.CashFlowLine, error) {
	query := `
		SELECT source, direction, COALESCE(SUM(amount_paise), 0), COUNT(*)
		FROM ledger_entries
		WHERE entry_date BETWEEN $1 AND $2
		GROUP BY source, direction
		ORDER BY source, direction
	`
	rows, err := r.db(ctx).Query(ctx, query, from, to)
	if err != nil {
		return nil, mapError(err, "error querying cash flow")
	}
	defer rows.Close()

	lines := []domain.CashFlowLine{}
	for rows.Next() {
		var l domain.CashFlowLine
		if err := rows.Scan(&l.Source, &l.Direction, &l.AmountPaise, &l.Count); err != nil {
			return nil, mapError(err, "error scanning cash flow row")
		}
		lines = append(lines, l)
	}
	return lines, mapError(rows.Err(), "error iterating cash flow rows")
}

// GetInterestIncome sums the interest portion of loan payments by loan kind.
func (r *reportingRepository) GetInterestIncome(ctx context.Context, from, to time.Time) ([]domain.InterestIncomeLine, error) {
	query := `
		SELECT l.kind, COALESCE(SUM(p.interest_paise), 0), COUNT(*)
		FROM loan_payments p
		JOIN loans l ON l.loan_id = p.loan_id
		WHERE p.paid_on BETWEEN $1 AND $2
			AND p.interest_paise > 0
		GROUP BY l.kind
		ORDER BY l.kind
	`
	rows, err := r.db(ctx).Query(ctx, query, from, to)
	if err != nil {
		return nil, mapError(err, "error querying interest income")
	}
	defer rows.Close()

	lines := []domain.InterestIncomeLine{}
	for rows.Next() {
		var l domain.InterestIncomeLine
		if err := rows.Scan(&l.Kind, &l.InterestPaise, &l.PaymentCount); err != nil {
			return nil, mapError(err, "error scanning interest income row")
		}
		lines = append(lines, l)
	}
	return lines, mapError(rows.Err(), "error iterating interest income rows")
}

// GetOpenUdhariTotals sums the unsettled balance of open IOUs per direction.
// An IOU is overdue when its due date is before asOf.
func (r *reportingRepository) GetOpenUdhariTotals(ctx context.Context, asOf time.Time) (given int64, taken int64, overdue int, err error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN direction = 'GIVEN' THEN amount_paise - settled_paise ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN direction = 'TAKEN' THEN amount_paise - settled_paise ELSE 0 END), 0),
			COUNT(*) FILTER (WHERE due_on < $1)
		FROM udhari
		WHERE status <> 'SETTLED' AND issued_on <= $1
	`
	if err = r.db(ctx).QueryRow(ctx, query, asOf).Scan(&given, &taken, &overdue); err != nil {
		return 0, 0, 0, mapError(err, "error totalling open udhari")
	}
	return given, taken, overdue, nil
}
