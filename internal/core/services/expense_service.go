package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	repo      portsrepo.ExpenseRepositoryFacade
	cashBook  portssvc.CashBookPoster
	txManager portsrepo.TransactionManager
}

// NewExpenseService creates the business expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, cashBook portssvc.CashBookPoster, txManager portsrepo.TransactionManager, opts ...BaseOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{repo: repo, cashBook: cashBook, txManager: txManager}
	svc.apply(opts)
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrExpenseCategoryInvalid, req.Category)
	}
	if req.AmountPaise <= 0 {
		return nil, domain.ErrAmountInvalid
	}
	expenseDate, err := dto.ParseDate(req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	mode := req.PaymentMode.OrDefault()
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrPaymentModeInvalid, req.PaymentMode)
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Category:    req.Category,
		AmountPaise: req.AmountPaise,
		ExpenseDate: expenseDate,
		PaymentMode: mode,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveExpense(ctx, expense); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
		_, err := s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: mode,
			EntryDate:   expenseDate,
			Source:      domain.SourceExpense,
			Direction:   domain.DirectionOut,
			AmountPaise: expense.AmountPaise,
			ReferenceID: expense.ExpenseID,
			Narration:   fmt.Sprintf("%s: %s", expense.Category, expense.Description),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense", slog.String("category", string(req.Category)))
		return nil, err
	}

	s.Publish(ctx, domain.EventExpenseCreated, expense.ExpenseID, userID, dto.ToExpenseResponse(&expense))
	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", string(expense.Category)),
		slog.Int64("amount_paise", expense.AmountPaise))
	return &expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.repo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error) {
	from, err := dto.ParseOptionalDate(params.From)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseOptionalDate(params.To)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.ErrDateRangeInvalid
	}

	expenses, err := s.repo.ListExpenses(ctx, domain.ExpenseFilter{
		Category:       params.Category,
		From:           from,
		To:             to,
		IncludeDeleted: params.IncludeDeleted,
		Limit:          params.Limit,
		Offset:         params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// UpdateExpense edits the category or description. The amount stays fixed
// because it has already been posted to the cash book.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	expense, err := s.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.IsDeleted {
		return nil, domain.ErrExpenseDeleted
	}

	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrExpenseCategoryInvalid, *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.LastUpdatedAt = s.Now()
	expense.LastUpdatedBy = userID

	if err := s.repo.UpdateExpenseDetails(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense and returns the money to the account
// it was paid from.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		expense, err := s.repo.FindExpenseByIDForUpdate(ctx, expenseID)
		if err != nil {
			return fmt.Errorf("failed to lock expense %s: %w", expenseID, err)
		}
		if expense.IsDeleted {
			return domain.ErrExpenseDeleted
		}

		now := s.Now()
		if err := s.repo.MarkExpenseDeleted(ctx, expenseID, userID, now); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		_, err = s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: expense.PaymentMode,
			EntryDate:   domain.DateOnly(now),
			Source:      domain.SourceExpenseReversal,
			Direction:   domain.DirectionIn,
			AmountPaise: expense.AmountPaise,
			ReferenceID: expense.ExpenseID,
			Narration:   fmt.Sprintf("Reversal of %s expense", expense.Category),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// SummariseExpenses totals live expenses per category, inclusive of both dates.
func (s *expenseService) SummariseExpenses(ctx context.Context, from, to time.Time) (*domain.ExpenseSummary, error) {
	if from.After(to) {
		return nil, domain.ErrDateRangeInvalid
	}
	totals, err := s.repo.SumExpensesByCategory(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarise expenses")
		return nil, fmt.Errorf("failed to summarise expenses: %w", err)
	}

	summary := &domain.ExpenseSummary{From: from, To: to, Categories: totals}
	for _, t := range totals {
		summary.TotalPaise += t.AmountPaise
	}
	return summary, nil
}
