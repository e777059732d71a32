package services

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// LoanReaderSvc defines read operations for loans
type LoanReaderSvc interface {
	GetLoan(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error)

	// GetLoanPosition accrues interest up to asOf without persisting anything.
	GetLoanPosition(ctx context.Context, loanID string, asOf time.Time) (*domain.LoanPosition, error)

	// ListLoanPayments returns the loan's repayment statement.
	ListLoanPayments(ctx context.Context, loanID string) ([]domain.LoanPayment, error)
}

// LoanWriterSvc defines write operations for loans
type LoanWriterSvc interface {
	// CreateLoan disburses a loan and posts the cash-book OUT entry.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error)

	// RepayLoan accrues interest to the payment date, applies the payment and
	// posts the cash-book IN entry in one transaction.
	RepayLoan(ctx context.Context, loanID string, req dto.RepayLoanRequest, userID string) (*domain.LoanPayment, *domain.Loan, error)

	// UpdateLoan changes the notes of a loan; financial fields are immutable.
	UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest, userID string) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
