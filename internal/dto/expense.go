package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=RENT SALARY UTILITIES TRANSPORT MAINTENANCE TAX SUPPLIES OTHER"`
	AmountPaise int64                  `json:"amountPaise" binding:"required,gt=0"`
	ExpenseDate string                 `json:"expenseDate" binding:"required,datetime=2006-01-02"`
	PaymentMode domain.PaymentMode     `json:"paymentMode" binding:"omitempty,paymentmode"`
	Description string                 `json:"description" binding:"max=500"`
}

// UpdateExpenseRequest defines the editable part of an expense. Amount,
// date and payment mode are fixed once the cash book has been posted.
type UpdateExpenseRequest struct {
	Category    *domain.ExpenseCategory `json:"category" binding:"omitempty,oneof=RENT SALARY UTILITIES TRANSPORT MAINTENANCE TAX SUPPLIES OTHER"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Category       domain.ExpenseCategory `form:"category" binding:"omitempty,oneof=RENT SALARY UTILITIES TRANSPORT MAINTENANCE TAX SUPPLIES OTHER"`
	From           string                 `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To             string                 `form:"to" binding:"omitempty,datetime=2006-01-02"`
	IncludeDeleted bool                   `form:"includeDeleted"`
	Limit          int                    `form:"limit,default=20" binding:"min=1,max=200"`
	Offset         int                    `form:"offset,default=0" binding:"min=0"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string                 `json:"expenseID"`
	Category      domain.ExpenseCategory `json:"category"`
	AmountPaise   int64                  `json:"amountPaise"`
	ExpenseDate   string                 `json:"expenseDate"`
	PaymentMode   domain.PaymentMode     `json:"paymentMode"`
	Description   string                 `json:"description"`
	IsDeleted     bool                   `json:"isDeleted"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Category:      e.Category,
		AmountPaise:   e.AmountPaise,
		ExpenseDate:   FormatDate(e.ExpenseDate),
		PaymentMode:   e.PaymentMode,
		Description:   e.Description,
		IsDeleted:     e.IsDeleted,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense
func ToListExpensesResponse(list []domain.Expense) ListExpensesResponse {
	res := make([]ExpenseResponse, len(list))
	for i := range list {
		res[i] = ToExpenseResponse(&list[i])
	}
	return ListExpensesResponse{Expenses: res}
}
