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

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, category, amount_paise, expense_date, payment_mode, description, is_deleted,
	created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(&e.ExpenseID, &e.Category, &e.AmountPaise, &e.ExpenseDate, &e.PaymentMode, &e.Description, &e.IsDeleted,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy)
	return e, err
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, e domain.Expense) error {
	query := `INSERT INTO expenses (` + expenseColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db(ctx).Exec(ctx, query, e.ExpenseID, e.Category, e.AmountPaise, e.ExpenseDate, e.PaymentMode, e.Description,
		e.IsDeleted, e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy)
	return mapError(err, "failed to save expense %s", e.ExpenseID)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	e, err := scanExpense(r.db(ctx).QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE expense_id = $1`, expenseID))
	if err != nil {
		return nil, mapError(err, "failed to find expense %s", expenseID)
	}
	return &e, nil
}

func (r *PgxExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	e, err := scanExpense(r.db(ctx).QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE expense_id = $1 FOR UPDATE`, expenseID))
	if err != nil {
		return nil, mapError(err, "failed to lock expense %s", expenseID)
	}
	return &e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, f domain.ExpenseFilter) ([]domain.Expense, error) {
	var w filter
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.From != nil {
		w.add("expense_date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("expense_date <= ?", *f.To)
	}
	if !f.IncludeDeleted {
		w.raw("NOT is_deleted")
	}
	page, args := pageClause(w.args, f.Limit, f.Offset)
	query := `SELECT ` + expenseColumns + ` FROM expenses` + w.where() + ` ORDER BY expense_date DESC, created_at DESC` + page

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list expenses")
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan expense row")
		}
		expenses = append(expenses, e)
	}
	return expenses, mapError(rows.Err(), "error iterating expense rows")
}

func (r *PgxExpenseRepository) SumExpensesByCategory(ctx context.Context, from, to time.Time) ([]domain.ExpenseCategoryTotal, error) {
	query := `SELECT category, COALESCE(SUM(amount_paise), 0), COUNT(*)
		FROM expenses
		WHERE NOT is_deleted AND expense_date BETWEEN $1 AND $2
		GROUP BY category
		ORDER BY category`
	rows, err := r.db(ctx).Query(ctx, query, from, to)
	if err != nil {
		return nil, mapError(err, "failed to sum expenses")
	}
	defer rows.Close()

	totals := []domain.ExpenseCategoryTotal{}
	for rows.Next() {
		var t domain.ExpenseCategoryTotal
		if err := rows.Scan(&t.Category, &t.AmountPaise, &t.Count); err != nil {
			return nil, mapError(err, "failed to scan expense total")
		}
		totals = append(totals, t)
	}
	return totals, mapError(rows.Err(), "error iterating expense totals")
}

func (r *PgxExpenseRepository) UpdateExpenseDetails(ctx context.Context, e domain.Expense) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE expenses SET category = $2, description = $3, last_updated_at = $4, last_updated_by = $5 WHERE expense_id = $1`,
		e.ExpenseID, e.Category, e.Description, e.LastUpdatedAt, e.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update expense %s", e.ExpenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE expenses SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3 WHERE expense_id = $1`,
		expenseID, now, userID)
	if err != nil {
		return mapError(err, "failed to delete expense %s", expenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
