package domain

import "time"

// ExpenseCategory groups business expenses for reporting.
type ExpenseCategory string

const (
	ExpenseRent        ExpenseCategory = "RENT"
	ExpenseSalary      ExpenseCategory = "SALARY"
	ExpenseUtilities   ExpenseCategory = "UTILITIES"
	ExpenseTransport   ExpenseCategory = "TRANSPORT"
	ExpenseMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseTax         ExpenseCategory = "TAX"
	ExpenseSupplies    ExpenseCategory = "SUPPLIES"
	ExpenseOther       ExpenseCategory = "OTHER"
)

// Valid reports whether c is a known category.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseRent, ExpenseSalary, ExpenseUtilities, ExpenseTransport,
		ExpenseMaintenance, ExpenseTax, ExpenseSupplies, ExpenseOther:
		return true
	}
	return false
}

// Expense is money the shop spent running the business.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Category    ExpenseCategory `json:"category"`
	AmountPaise int64           `json:"amountPaise"`
	ExpenseDate time.Time       `json:"expenseDate"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	Description string          `json:"description"`
	IsDeleted   bool            `json:"isDeleted"`
	AuditFields
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category       ExpenseCategory
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// ExpenseCategoryTotal is the amount spent in one category.
type ExpenseCategoryTotal struct {
	Category    ExpenseCategory `json:"category"`
	AmountPaise int64           `json:"amountPaise"`
	Count       int             `json:"count"`
}

// ExpenseSummary is the per-category breakdown for a period.
type ExpenseSummary struct {
	From       time.Time              `json:"from"`
	To         time.Time              `json:"to"`
	Categories []ExpenseCategoryTotal `json:"categories"`
	TotalPaise int64                  `json:"totalPaise"`
}
