package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a loan together with its collateral items.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoans retrieves loans matching the filter, newest first, with their collateral items.
	ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error)

	// ListOpenLoans retrieves loans that had started by asOf and were not
	// closed on or before it.
	ListOpenLoans(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoan persists a new loan and its items, assigning its CFID.
	SaveLoan(ctx context.Context, loan *domain.Loan) error

	// UpdateLoanNotes updates the free-text notes of a loan.
	UpdateLoanNotes(ctx context.Context, loanID string, notes string, userID string, now time.Time) error
}

// LoanTransactionSupport defines operations used while repaying a loan.
// They must run inside TransactionManager.RunInTx.
type LoanTransactionSupport interface {
	// FindLoanByIDForUpdate loads a loan and its items and locks the loan row.
	FindLoanByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error)

	// UpdateLoanBalances persists the accrual point, counters, status and closing date.
	UpdateLoanBalances(ctx context.Context, loan domain.Loan) error

	// ReleaseItems marks collateral items as returned.
	ReleaseItems(ctx context.Context, loanID string, itemIDs []string, returnedOn time.Time) error

	// SavePayment persists a repayment.
	SavePayment(ctx context.Context, payment domain.LoanPayment) error
}

// LoanPaymentReader defines read operations for repayments.
type LoanPaymentReader interface {
	// ListPaymentsByLoan returns a loan's repayments in payment order.
	ListPaymentsByLoan(ctx context.Context, loanID string) ([]domain.LoanPayment, error)
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
	LoanTransactionSupport
	LoanPaymentReader
}
