package accounting

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AccrualState is the slice of a loan the interest engine works on.
type AccrualState struct {
	StartDate            time.Time
	AccruedThrough       time.Time
	OutstandingPaise     int64
	PendingInterestPaise int64
	MonthlyRatePct       decimal.Decimal
}

// StateOf extracts the accrual state of a loan.
func StateOf(l *domain.Loan) AccrualState {
	return AccrualState{
		StartDate:            l.StartDate,
		AccruedThrough:       l.InterestAccruedThrough,
		OutstandingPaise:     l.OutstandingPaise,
		PendingInterestPaise: l.AccruedInterestPaise,
		MonthlyRatePct:       l.MonthlyRatePct,
	}
}

// Accrual is the result of bringing a loan's interest up to date.
type Accrual struct {
	Months               int       // Whole months newly accrued
	InterestPaise        int64     // Interest added by this accrual
	PendingInterestPaise int64     // Unpaid interest after the accrual
	AccruedThrough       time.Time // New accrual point
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}

// WholeMonthsBetween counts completed calendar months from one day to another.
// A month completes on the same day-of-month, or on the last day of a month too
// short to have that day. It never returns a negative number.
func WholeMonthsBetween(from, to time.Time) int {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() && !isLastDayOfMonth(to) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// AddMonths moves t forward n calendar months, clamping to the last day of
// the target month instead of overflowing into the next one.
func AddMonths(t time.Time, n int) time.Time {
	t = domain.DateOnly(t)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MonthlyInterest is one month of interest on the outstanding principal,
// rounded half-up to whole paise.
func MonthlyInterest(outstandingPaise int64, monthlyRatePct decimal.Decimal) int64 {
	if outstandingPaise <= 0 || !monthlyRatePct.IsPositive() {
		return 0
	}
	return decimal.NewFromInt(outstandingPaise).Mul(monthlyRatePct).Div(hundred).Round(0).IntPart()
}

// AccrueInterest charges simple interest for every whole month completed
// between the last accrual point and asOf. Months are counted from the loan
// start date so clamped month ends do not drift. The accrual point only
// advances by whole months, leaving any partial month for the next call.
func AccrueInterest(s AccrualState, asOf time.Time) Accrual {
	through := domain.DateOnly(s.AccruedThrough)
	if through.IsZero() {
		through = domain.DateOnly(s.StartDate)
	}
	res := Accrual{PendingInterestPaise: s.PendingInterestPaise, AccruedThrough: through}

	done := WholeMonthsBetween(s.StartDate, through)
	total := WholeMonthsBetween(s.StartDate, asOf)
	months := total - done
	if months <= 0 {
		return res
	}

	res.Months = months
	res.InterestPaise = int64(months) * MonthlyInterest(s.OutstandingPaise, s.MonthlyRatePct)
	res.PendingInterestPaise += res.InterestPaise
	res.AccruedThrough = AddMonths(s.StartDate, total)
	return res
}

// Payoff is what it would take to close the loan on asOf.
func Payoff(s AccrualState, asOf time.Time) int64 {
	return AccrueInterest(s, asOf).PendingInterestPaise + s.OutstandingPaise
}

// RepaymentRequest describes a payment. When neither part is given the amount
// is applied to interest first and then principal.
type RepaymentRequest struct {
	AmountPaise    int64
	PrincipalPaise *int64
	InterestPaise  *int64
}

// Allocation is how a payment was split.
type Allocation struct {
	PrincipalPaise int64
	InterestPaise  int64
}

// TotalPaise is the full payment.
func (a Allocation) TotalPaise() int64 {
	return a.PrincipalPaise + a.InterestPaise
}

// AllocateRepayment splits a payment between pending interest and outstanding
// principal. It refuses any split that would leave either below zero.
func AllocateRepayment(pendingInterestPaise, outstandingPaise int64, req RepaymentRequest) (Allocation, error) {
	var alloc Allocation

	if req.PrincipalPaise == nil && req.InterestPaise == nil {
		if req.AmountPaise <= 0 {
			return alloc, domain.ErrRepaymentInvalid
		}
		if req.AmountPaise > pendingInterestPaise+outstandingPaise {
			return alloc, domain.ErrRepaymentExceedsDue
		}
		alloc.InterestPaise = min(req.AmountPaise, pendingInterestPaise)
		alloc.PrincipalPaise = req.AmountPaise - alloc.InterestPaise
		return alloc, nil
	}

	switch {
	case req.PrincipalPaise != nil && req.InterestPaise != nil:
		alloc.PrincipalPaise, alloc.InterestPaise = *req.PrincipalPaise, *req.InterestPaise
		if req.AmountPaise != 0 && req.AmountPaise != alloc.TotalPaise() {
			return Allocation{}, domain.ErrRepaymentSplitInvalid
		}
	case req.PrincipalPaise != nil:
		alloc.PrincipalPaise = *req.PrincipalPaise
		if req.AmountPaise != 0 {
			alloc.InterestPaise = req.AmountPaise - alloc.PrincipalPaise
		}
	default:
		alloc.InterestPaise = *req.InterestPaise
		if req.AmountPaise != 0 {
			alloc.PrincipalPaise = req.AmountPaise - alloc.InterestPaise
		}
	}

	if alloc.PrincipalPaise < 0 || alloc.InterestPaise < 0 {
		return Allocation{}, domain.ErrRepaymentSplitInvalid
	}
	if alloc.TotalPaise() <= 0 {
		return Allocation{}, domain.ErrRepaymentInvalid
	}
	if alloc.InterestPaise > pendingInterestPaise {
		return Allocation{}, domain.ErrInterestExceedsDue
	}
	if alloc.PrincipalPaise > outstandingPaise {
		return Allocation{}, domain.ErrPrincipalExceedsDue
	}
	return alloc, nil
}

// DeriveLoanStatus works out a loan's status from its counters.
func DeriveLoanStatus(principalPaidPaise, interestPaidPaise, outstandingPaise, pendingInterestPaise int64) domain.LoanStatus {
	switch {
	case outstandingPaise == 0 && pendingInterestPaise == 0:
		return domain.LoanClosed
	case principalPaidPaise > 0 || interestPaidPaise > 0:
		return domain.LoanPartiallyPaid
	}
	return domain.LoanActive
}
