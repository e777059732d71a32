package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `loan_id, cfid, kind, customer_id, principal_paise, outstanding_paise, monthly_rate_pct,
	start_date, interest_accrued_through, accrued_interest_paise, interest_paid_paise, principal_paid_paise,
	status, closed_on, payment_mode, notes, created_at, created_by, last_updated_at, last_updated_by`

const itemColumns = `item_id, loan_id, description, metal, gross_weight_grams, net_weight_grams, purity_pct,
	appraised_value_paise, status, returned_on`

func scanLoan(row pgx.Row) (domain.Loan, error) {
	var l domain.Loan
	err := row.Scan(&l.LoanID, &l.CFID, &l.Kind, &l.CustomerID, &l.PrincipalPaise, &l.OutstandingPaise, &l.MonthlyRatePct,
		&l.StartDate, &l.InterestAccruedThrough, &l.AccruedInterestPaise, &l.InterestPaidPaise, &l.PrincipalPaidPaise,
		&l.Status, &l.ClosedOn, &l.PaymentMode, &l.Notes, &l.CreatedAt, &l.CreatedBy, &l.LastUpdatedAt, &l.LastUpdatedBy)
	return l, err
}

// SaveLoan draws the next loan number and inserts the loan with its items.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan *domain.Loan) error {
	q := r.db(ctx)
	n, err := nextSequence(ctx, q, "loan_cfid_seq")
	if err != nil {
		return err
	}
	loan.CFID = cfid(loan.Kind.CFIDPrefix(), n)

	query := `INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = q.Exec(ctx, query,
		loan.LoanID, loan.CFID, loan.Kind, loan.CustomerID, loan.PrincipalPaise, loan.OutstandingPaise, loan.MonthlyRatePct,
		loan.StartDate, loan.InterestAccruedThrough, loan.AccruedInterestPaise, loan.InterestPaidPaise, loan.PrincipalPaidPaise,
		loan.Status, loan.ClosedOn, loan.PaymentMode, loan.Notes, loan.CreatedAt, loan.CreatedBy, loan.LastUpdatedAt, loan.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "failed to insert loan %s", loan.LoanID)
	}
	if len(loan.Items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	itemQuery := `INSERT INTO collateral_items (position, ` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for i, item := range loan.Items {
		batch.Queue(itemQuery, i, item.ItemID, loan.LoanID, item.Description, item.Metal, item.GrossWeightGrams,
			item.NetWeightGrams, item.PurityPct, item.AppraisedValuePaise, item.Status, item.ReturnedOn)
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return mapError(err, "failed to insert collateral for loan %s", loan.LoanID)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	return r.findLoan(ctx, loanID, "")
}

func (r *PgxLoanRepository) FindLoanByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	return r.findLoan(ctx, loanID, " FOR UPDATE")
}

func (r *PgxLoanRepository) findLoan(ctx context.Context, loanID string, lock string) (*domain.Loan, error) {
	q := r.db(ctx)
	loan, err := scanLoan(q.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE loan_id = $1`+lock, loanID))
	if err != nil {
		return nil, mapError(err, "failed to find loan %s", loanID)
	}

	rows, err := q.Query(ctx, `SELECT `+itemColumns+` FROM collateral_items WHERE loan_id = $1 ORDER BY position`, loanID)
	if err != nil {
		return nil, mapError(err, "failed to query items for loan %s", loanID)
	}
	defer rows.Close()

	loan.Items = []domain.CollateralItem{}
	for rows.Next() {
		var it domain.CollateralItem
		if err := rows.Scan(&it.ItemID, &it.LoanID, &it.Description, &it.Metal, &it.GrossWeightGrams, &it.NetWeightGrams,
			&it.PurityPct, &it.AppraisedValuePaise, &it.Status, &it.ReturnedOn); err != nil {
			return nil, mapError(err, "failed to scan item row for loan %s", loanID)
		}
		loan.Items = append(loan.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating item rows for loan %s", loanID)
	}
	return &loan, nil
}

func (r *PgxLoanRepository) ListLoans(ctx context.Context, f domain.LoanFilter) ([]domain.Loan, error) {
	var w filter
	if f.Kind != "" {
		w.add("kind = ?", f.Kind)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.CustomerID != "" {
		w.add("customer_id = ?", f.CustomerID)
	}
	if f.OpenOnly {
		w.raw("status <> 'CLOSED'")
	}
	page, args := pageClause(w.args, f.Limit, f.Offset)
	return r.queryLoans(ctx, `SELECT `+loanColumns+` FROM loans`+w.where()+` ORDER BY start_date DESC, created_at DESC`+page, args...)
}

func (r *PgxLoanRepository) ListOpenLoans(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	return r.queryLoans(ctx, `SELECT `+loanColumns+` FROM loans
		WHERE start_date <= $1 AND (closed_on IS NULL OR closed_on > $1) ORDER BY start_date`, asOf)
}

func (r *PgxLoanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list loans")
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan loan row")
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating loan rows")
	}
	rows.Close()

	if err := r.loadItems(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// loadItems attaches collateral to a page of loans with a single query.
func (r *PgxLoanRepository) loadItems(ctx context.Context, loans []domain.Loan) error {
	if len(loans) == 0 {
		return nil
	}
	ids := make([]string, len(loans))
	for i := range loans {
		ids[i] = loans[i].LoanID
		loans[i].Items = []domain.CollateralItem{}
	}

	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+itemColumns+` FROM collateral_items WHERE loan_id = ANY($1) ORDER BY loan_id, position`, ids)
	if err != nil {
		return mapError(err, "failed to query items for %d loans", len(loans))
	}
	defer rows.Close()

	byLoan := make(map[string][]domain.CollateralItem, len(loans))
	for rows.Next() {
		var it domain.CollateralItem
		if err := rows.Scan(&it.ItemID, &it.LoanID, &it.Description, &it.Metal, &it.GrossWeightGrams, &it.NetWeightGrams,
			&it.PurityPct, &it.AppraisedValuePaise, &it.Status, &it.ReturnedOn); err != nil {
			return mapError(err, "failed to scan item row")
		}
		byLoan[it.LoanID] = append(byLoan[it.LoanID], it)
	}
	if err := rows.Err(); err != nil {
		return mapError(err, "error iterating item rows")
	}
	for i := range loans {
		if items, ok := byLoan[loans[i].LoanID]; ok {
			loans[i].Items = items
		}
	}
	return nil
}

func (r *PgxLoanRepository) UpdateLoanNotes(ctx context.Context, loanID string, notes string, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE loans SET notes = $2, last_updated_at = $3, last_updated_by = $4 WHERE loan_id = $1`,
		loanID, notes, now, userID)
	if err != nil {
		return mapError(err, "failed to update notes of loan %s", loanID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLoanRepository) UpdateLoanBalances(ctx context.Context, loan domain.Loan) error {
	query := `UPDATE loans
		SET outstanding_paise = $2, interest_accrued_through = $3, accrued_interest_paise = $4,
			interest_paid_paise = $5, principal_paid_paise = $6, status = $7, closed_on = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE loan_id = $1`
	tag, err := r.db(ctx).Exec(ctx, query, loan.LoanID, loan.OutstandingPaise, loan.InterestAccruedThrough,
		loan.AccruedInterestPaise, loan.InterestPaidPaise, loan.PrincipalPaidPaise, loan.Status, loan.ClosedOn,
		loan.LastUpdatedAt, loan.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update balances of loan %s", loan.LoanID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLoanRepository) ReleaseItems(ctx context.Context, loanID string, itemIDs []string, returnedOn time.Time) error {
	if len(itemIDs) == 0 {
		return nil
	}
	_, err := r.db(ctx).Exec(ctx,
		`UPDATE collateral_items SET status = $3, returned_on = $4 WHERE loan_id = $1 AND item_id = ANY($2)`,
		loanID, itemIDs, domain.ItemReturned, returnedOn)
	return mapError(err, "failed to release items of loan %s", loanID)
}

func (r *PgxLoanRepository) SavePayment(ctx context.Context, p domain.LoanPayment) error {
	released := p.ReleasedItemIDs
	if released == nil {
		released = []string{}
	}
	query := `INSERT INTO loan_payments
		(payment_id, loan_id, paid_on, principal_paise, interest_paise, payment_mode, notes, released_item_ids, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db(ctx).Exec(ctx, query, p.PaymentID, p.LoanID, p.PaidOn, p.PrincipalPaise, p.InterestPaise,
		p.PaymentMode, p.Notes, released, p.CreatedAt, p.CreatedBy)
	return mapError(err, "failed to save payment %s", p.PaymentID)
}

func (r *PgxLoanRepository) ListPaymentsByLoan(ctx context.Context, loanID string) ([]domain.LoanPayment, error) {
	query := `SELECT payment_id, loan_id, paid_on, principal_paise, interest_paise, payment_mode, notes, released_item_ids, created_at, created_by
		FROM loan_payments WHERE loan_id = $1 ORDER BY paid_on, created_at`
	rows, err := r.db(ctx).Query(ctx, query, loanID)
	if err != nil {
		return nil, mapError(err, "failed to list payments of loan %s", loanID)
	}
	defer rows.Close()

	payments := []domain.LoanPayment{}
	for rows.Next() {
		var p domain.LoanPayment
		if err := rows.Scan(&p.PaymentID, &p.LoanID, &p.PaidOn, &p.PrincipalPaise, &p.InterestPaise, &p.PaymentMode,
			&p.Notes, &p.ReleasedItemIDs, &p.CreatedAt, &p.CreatedBy); err != nil {
			return nil, mapError(err, "failed to scan payment row")
		}
		payments = append(payments, p)
	}
	return payments, mapError(rows.Err(), "error iterating payment rows")
}
