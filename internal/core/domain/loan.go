package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LoanKind distinguishes plain cash loans from pawn loans backed by metal.
type LoanKind string

const (
	CashLoan   LoanKind = "CASH"
	GoldLoan   LoanKind = "GOLD"
	SilverLoan LoanKind = "SILVER"
)

// Valid reports whether k is a known loan kind.
func (k LoanKind) Valid() bool {
	switch k {
	case CashLoan, GoldLoan, SilverLoan:
		return true
	}
	return false
}

// Metal returns the collateral metal for pawn loans; ok is false for cash loans.
func (k LoanKind) Metal() (metal Metal, ok bool) {
	switch k {
	case GoldLoan:
		return Gold, true
	case SilverLoan:
		return Silver, true
	}
	return "", false
}

// CFIDPrefix is the prefix of the customer facing loan number.
func (k LoanKind) CFIDPrefix() string {
	switch k {
	case GoldLoan:
		return "GL"
	case SilverLoan:
		return "SL"
	}
	return "CL"
}

// LoanStatus indicates where a loan is in its repayment lifecycle.
type LoanStatus string

const (
	LoanActive        LoanStatus = "ACTIVE"
	LoanPartiallyPaid LoanStatus = "PARTIALLY_PAID"
	LoanClosed        LoanStatus = "CLOSED"
)

// ItemStatus tracks whether a pawned item is still with the shop.
type ItemStatus string

const (
	ItemHeld     ItemStatus = "HELD"
	ItemReturned ItemStatus = "RETURNED"
)

// CollateralItem is a physical piece pledged against a gold or silver loan.
type CollateralItem struct {
	ItemID              string          `json:"itemID"`
	LoanID              string          `json:"loanID"`
	Description         string          `json:"description"`
	Metal               Metal           `json:"metal"`
	GrossWeightGrams    decimal.Decimal `json:"grossWeightGrams"`
	NetWeightGrams      decimal.Decimal `json:"netWeightGrams"`
	PurityPct           decimal.Decimal `json:"purityPct"`
	AppraisedValuePaise int64           `json:"appraisedValuePaise"`
	Status              ItemStatus      `json:"status"`
	ReturnedOn          *time.Time      `json:"returnedOn,omitempty"`
}

// Loan is a customer loan. Principal and interest are tracked separately:
// OutstandingPaise is the unpaid principal, AccruedInterestPaise the interest
// accrued up to InterestAccruedThrough that has not been paid yet.
type Loan struct {
	LoanID                 string           `json:"loanID"`
	CFID                   string           `json:"cfid"` // Customer facing loan number, e.g. GL-000042
	Kind                   LoanKind         `json:"kind"`
	CustomerID             string           `json:"customerID"`
	PrincipalPaise         int64            `json:"principalPaise"`
	OutstandingPaise       int64            `json:"outstandingPaise"`
	MonthlyRatePct         decimal.Decimal  `json:"monthlyRatePct"`
	StartDate              time.Time        `json:"startDate"`
	InterestAccruedThrough time.Time        `json:"interestAccruedThrough"`
	AccruedInterestPaise   int64            `json:"accruedInterestPaise"`
	InterestPaidPaise      int64            `json:"interestPaidPaise"`
	PrincipalPaidPaise     int64            `json:"principalPaidPaise"`
	Status                 LoanStatus       `json:"status"`
	ClosedOn               *time.Time       `json:"closedOn,omitempty"`
	PaymentMode            PaymentMode      `json:"paymentMode"`
	Notes                  string           `json:"notes"`
	Items                  []CollateralItem `json:"items"`
	AuditFields
}

// IsClosed reports whether the loan has been fully settled.
func (l *Loan) IsClosed() bool {
	return l.Status == LoanClosed
}

// HeldItems returns the collateral items still held by the shop.
func (l *Loan) HeldItems() []CollateralItem {
	held := make([]CollateralItem, 0, len(l.Items))
	for _, item := range l.Items {
		if item.Status == ItemHeld {
			held = append(held, item)
		}
	}
	return held
}

// TotalAppraisedPaise sums the appraised value of every pledged item.
func (l *Loan) TotalAppraisedPaise() int64 {
	var total int64
	for _, item := range l.Items {
		total += item.AppraisedValuePaise
	}
	return total
}

// ValidateCollateral checks the pledged items against the loan kind.
func (l *Loan) ValidateCollateral() error {
	metal, isMetalLoan := l.Kind.Metal()
	if !isMetalLoan {
		if len(l.Items) > 0 {
			return ErrCollateralNotAllowed
		}
		return nil
	}
	if len(l.Items) == 0 {
		return ErrCollateralRequired
	}
	hundred := decimal.NewFromInt(100)
	for i, item := range l.Items {
		if item.Metal != metal {
			return fmt.Errorf("%w: item %d is %s", ErrCollateralMetal, i+1, item.Metal)
		}
		if !item.GrossWeightGrams.IsPositive() || !item.NetWeightGrams.IsPositive() ||
			item.NetWeightGrams.GreaterThan(item.GrossWeightGrams) {
			return fmt.Errorf("%w: item %d", ErrCollateralWeight, i+1)
		}
		if !item.PurityPct.IsPositive() || item.PurityPct.GreaterThan(hundred) {
			return fmt.Errorf("%w: item %d", ErrPurityInvalid, i+1)
		}
		if item.AppraisedValuePaise < 0 {
			return fmt.Errorf("%w: item %d appraisal", ErrAmountInvalid, i+1)
		}
	}
	return nil
}

// LoanPayment is a single repayment split into principal and interest.
type LoanPayment struct {
	PaymentID       string      `json:"paymentID"`
	LoanID          string      `json:"loanID"`
	PaidOn          time.Time   `json:"paidOn"`
	PrincipalPaise  int64       `json:"principalPaise"`
	InterestPaise   int64       `json:"interestPaise"`
	PaymentMode     PaymentMode `json:"paymentMode"`
	Notes           string      `json:"notes"`
	ReleasedItemIDs []string    `json:"releasedItemIDs"`
	CreatedAt       time.Time   `json:"createdAt"`
	CreatedBy       string      `json:"createdBy"`
}

// TotalPaise is the cash received for the payment.
func (p LoanPayment) TotalPaise() int64 {
	return p.PrincipalPaise + p.InterestPaise
}

// LoanPosition is a read-only snapshot of what a loan owes on a given date.
type LoanPosition struct {
	LoanID                 string     `json:"loanID"`
	AsOf                   time.Time  `json:"asOf"`
	OutstandingPaise       int64      `json:"outstandingPaise"`
	PendingInterestPaise   int64      `json:"pendingInterestPaise"`
	MonthsAccrued          int        `json:"monthsAccrued"`
	InterestAccruedThrough time.Time  `json:"interestAccruedThrough"`
	PayoffPaise            int64      `json:"payoffPaise"`
	Status                 LoanStatus `json:"status"`
}

// LoanFilter narrows loan listings.
type LoanFilter struct {
	Kind       LoanKind
	Status     LoanStatus
	CustomerID string
	OpenOnly   bool
	Limit      int
	Offset     int
}
