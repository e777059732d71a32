package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollateralItemRequest describes one pledged piece.
type CollateralItemRequest struct {
	Description         string          `json:"description" binding:"required,max=500"`
	Metal               domain.Metal    `json:"metal" binding:"omitempty,metal"` // Defaults to the loan's metal
	GrossWeightGrams    decimal.Decimal `json:"grossWeightGrams" binding:"required,gt=0"`
	NetWeightGrams      decimal.Decimal `json:"netWeightGrams" binding:"required,gt=0"`
	PurityPct           decimal.Decimal `json:"purityPct" binding:"required,purity"`
	AppraisedValuePaise *int64          `json:"appraisedValuePaise" binding:"omitempty,gte=0"` // Appraised from the metal rate when omitted
}

// CreateLoanRequest defines the data needed to disburse a loan.
type CreateLoanRequest struct {
	Kind           domain.LoanKind         `json:"kind" binding:"omitempty,oneof=CASH GOLD SILVER"` // Set from the route on kind-scoped endpoints
	CustomerID     string                  `json:"customerID" binding:"required,uuid"`
	PrincipalPaise int64                   `json:"principalPaise" binding:"required,gt=0"`
	MonthlyRatePct *decimal.Decimal        `json:"monthlyRatePct" binding:"omitempty,ratepct"` // Shop default for the kind when omitted
	StartDate      string                  `json:"startDate" binding:"required,datetime=2006-01-02"`
	PaymentMode    domain.PaymentMode      `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes          string                  `json:"notes"`
	Items          []CollateralItemRequest `json:"items" binding:"omitempty,dive"`
}

// RepayLoanRequest records a repayment. Give amountPaise alone to pay interest
// first, or principalPaise and/or interestPaise for an explicit split.
type RepayLoanRequest struct {
	AmountPaise    int64              `json:"amountPaise" binding:"gte=0"`
	PrincipalPaise *int64             `json:"principalPaise" binding:"omitempty,gte=0"`
	InterestPaise  *int64             `json:"interestPaise" binding:"omitempty,gte=0"`
	PaidOn         string             `json:"paidOn" binding:"required,datetime=2006-01-02"`
	PaymentMode    domain.PaymentMode `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes          string             `json:"notes"`
	ReleaseItemIDs []string           `json:"releaseItemIDs" binding:"omitempty,dive,uuid"`
}

// UpdateLoanRequest defines the editable part of a loan.
type UpdateLoanRequest struct {
	Notes *string `json:"notes" binding:"required"`
}

// ListLoansParams defines query parameters for listing loans.
type ListLoansParams struct {
	Kind       domain.LoanKind   `form:"kind" binding:"omitempty,oneof=CASH GOLD SILVER"`
	Status     domain.LoanStatus `form:"status" binding:"omitempty,oneof=ACTIVE PARTIALLY_PAID CLOSED"`
	CustomerID string            `form:"customerID" binding:"omitempty,uuid"`
	OpenOnly   bool              `form:"open"`
	Limit      int               `form:"limit,default=20" binding:"min=1,max=200"`
	Offset     int               `form:"offset,default=0" binding:"min=0"`
}

// LoanPositionParams selects the day a position is computed for.
type LoanPositionParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"` // Today when omitted
}

// CollateralItemResponse defines the data returned for a pledged item.
type CollateralItemResponse struct {
	ItemID              string            `json:"itemID"`
	Description         string            `json:"description"`
	Metal               domain.Metal      `json:"metal"`
	GrossWeightGrams    decimal.Decimal   `json:"grossWeightGrams"`
	NetWeightGrams      decimal.Decimal   `json:"netWeightGrams"`
	PurityPct           decimal.Decimal   `json:"purityPct"`
	AppraisedValuePaise int64             `json:"appraisedValuePaise"`
	Status              domain.ItemStatus `json:"status"`
	ReturnedOn          *string           `json:"returnedOn,omitempty"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID                 string                   `json:"loanID"`
	CFID                   string                   `json:"cfid"`
	Kind                   domain.LoanKind          `json:"kind"`
	CustomerID             string                   `json:"customerID"`
	PrincipalPaise         int64                    `json:"principalPaise"`
	OutstandingPaise       int64                    `json:"outstandingPaise"`
	MonthlyRatePct         decimal.Decimal          `json:"monthlyRatePct"`
	StartDate              string                   `json:"startDate"`
	InterestAccruedThrough string                   `json:"interestAccruedThrough"`
	AccruedInterestPaise   int64                    `json:"accruedInterestPaise"`
	InterestPaidPaise      int64                    `json:"interestPaidPaise"`
	PrincipalPaidPaise     int64                    `json:"principalPaidPaise"`
	Status                 domain.LoanStatus        `json:"status"`
	ClosedOn               *string                  `json:"closedOn,omitempty"`
	PaymentMode            domain.PaymentMode       `json:"paymentMode"`
	Notes                  string                   `json:"notes"`
	Items                  []CollateralItemResponse `json:"items,omitempty"`
	CreatedAt              time.Time                `json:"createdAt"`
	CreatedBy              string                   `json:"createdBy"`
	LastUpdatedAt          time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy          string                   `json:"lastUpdatedBy"`
}

// ListLoansResponse wraps the list of loans.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO
func ToLoanResponse(l *domain.Loan) LoanResponse {
	var items []CollateralItemResponse
	if len(l.Items) > 0 {
		items = make([]CollateralItemResponse, len(l.Items))
		for i, it := range l.Items {
			items[i] = CollateralItemResponse{
				ItemID:              it.ItemID,
				Description:         it.Description,
				Metal:               it.Metal,
				GrossWeightGrams:    it.GrossWeightGrams,
				NetWeightGrams:      it.NetWeightGrams,
				PurityPct:           it.PurityPct,
				AppraisedValuePaise: it.AppraisedValuePaise,
				Status:              it.Status,
				ReturnedOn:          FormatOptionalDate(it.ReturnedOn),
			}
		}
	}
	return LoanResponse{
		LoanID:                 l.LoanID,
		CFID:                   l.CFID,
		Kind:                   l.Kind,
		CustomerID:             l.CustomerID,
		PrincipalPaise:         l.PrincipalPaise,
		OutstandingPaise:       l.OutstandingPaise,
		MonthlyRatePct:         l.MonthlyRatePct,
		StartDate:              FormatDate(l.StartDate),
		InterestAccruedThrough: FormatDate(l.InterestAccruedThrough),
		AccruedInterestPaise:   l.AccruedInterestPaise,
		InterestPaidPaise:      l.InterestPaidPaise,
		PrincipalPaidPaise:     l.PrincipalPaidPaise,
		Status:                 l.Status,
		ClosedOn:               FormatOptionalDate(l.ClosedOn),
		PaymentMode:            l.PaymentMode,
		Notes:                  l.Notes,
		Items:                  items,
		CreatedAt:              l.CreatedAt,
		CreatedBy:              l.CreatedBy,
		LastUpdatedAt:          l.LastUpdatedAt,
		LastUpdatedBy:          l.LastUpdatedBy,
	}
}

// ToListLoansResponse converts a slice of domain.Loan
func ToListLoansResponse(loans []domain.Loan) ListLoansResponse {
	res := make([]LoanResponse, len(loans))
	for i := range loans {
		res[i] = ToLoanResponse(&loans[i])
	}
	return ListLoansResponse{Loans: res}
}

// LoanPaymentResponse defines the data returned for a repayment.
type LoanPaymentResponse struct {
	PaymentID       string             `json:"paymentID"`
	LoanID          string             `json:"loanID"`
	PaidOn          string             `json:"paidOn"`
	PrincipalPaise  int64              `json:"principalPaise"`
	InterestPaise   int64              `json:"interestPaise"`
	TotalPaise      int64              `json:"totalPaise"`
	PaymentMode     domain.PaymentMode `json:"paymentMode"`
	Notes           string             `json:"notes"`
	ReleasedItemIDs []string           `json:"releasedItemIDs"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
}

// ToLoanPaymentResponse converts a domain.LoanPayment
func ToLoanPaymentResponse(p *domain.LoanPayment) LoanPaymentResponse {
	released := p.ReleasedItemIDs
	if released == nil {
		released = []string{}
	}
	return LoanPaymentResponse{
		PaymentID:       p.PaymentID,
		LoanID:          p.LoanID,
		PaidOn:          FormatDate(p.PaidOn),
		PrincipalPaise:  p.PrincipalPaise,
		InterestPaise:   p.InterestPaise,
		TotalPaise:      p.TotalPaise(),
		PaymentMode:     p.PaymentMode,
		Notes:           p.Notes,
		ReleasedItemIDs: released,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
	}
}

// ListLoanPaymentsResponse is a loan's statement of repayments.
type ListLoanPaymentsResponse struct {
	Payments []LoanPaymentResponse `json:"payments"`
}

// ToListLoanPaymentsResponse converts a slice of domain.LoanPayment
func ToListLoanPaymentsResponse(payments []domain.LoanPayment) ListLoanPaymentsResponse {
	res := make([]LoanPaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToLoanPaymentResponse(&payments[i])
	}
	return ListLoanPaymentsResponse{Payments: res}
}

// RepayLoanResponse returns the payment and the loan after it was applied.
type RepayLoanResponse struct {
	Payment LoanPaymentResponse `json:"payment"`
	Loan    LoanResponse        `json:"loan"`
}

// LoanPositionResponse defines the data returned for a loan position.
type LoanPositionResponse struct {
	LoanID                 string            `json:"loanID"`
	AsOf                   string            `json:"asOf"`
	OutstandingPaise       int64             `json:"outstandingPaise"`
	PendingInterestPaise   int64             `json:"pendingInterestPaise"`
	MonthsAccrued          int               `json:"monthsAccrued"`
	InterestAccruedThrough string            `json:"interestAccruedThrough"`
	PayoffPaise            int64             `json:"payoffPaise"`
	Status                 domain.LoanStatus `json:"status"`
}

// ToLoanPositionResponse converts a domain.LoanPosition
func ToLoanPositionResponse(p *domain.LoanPosition) LoanPositionResponse {
	return LoanPositionResponse{
		LoanID:                 p.LoanID,
		AsOf:                   FormatDate(p.AsOf),
		OutstandingPaise:       p.OutstandingPaise,
		PendingInterestPaise:   p.PendingInterestPaise,
		MonthsAccrued:          p.MonthsAccrued,
		InterestAccruedThrough: FormatDate(p.InterestAccruedThrough),
		PayoffPaise:            p.PayoffPaise,
		Status:                 p.Status,
	}
}
