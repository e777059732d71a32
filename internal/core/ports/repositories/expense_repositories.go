package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)

	// SumExpensesByCategory totals live expenses dated within [from, to].
	SumExpensesByCategory(ctx context.Context, from, to time.Time) ([]domain.ExpenseCategoryTotal, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpenseDetails updates the description and category only.
	UpdateExpenseDetails(ctx context.Context, expense domain.Expense) error

	FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error)
	MarkExpenseDeleted(ctx context.Context, expenseID string, userID string, now time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
