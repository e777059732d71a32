package domain

import "time"

// LoanKindSummary is the open book for one loan kind.
type LoanKindSummary struct {
	Kind                 LoanKind `json:"kind"`
	OpenCount            int      `json:"openCount"`
	OutstandingPaise     int64    `json:"outstandingPaise"`
	PendingInterestPaise int64    `json:"pendingInterestPaise"`
}

// SummaryReport is the shop's position on a given day.
type SummaryReport struct {
	AsOf                 time.Time         `json:"asOf"`
	Loans                []LoanKindSummary `json:"loans"`
	UdhariGivenOpenPaise int64             `json:"udhariGivenOpenPaise"`
	UdhariTakenOpenPaise int64             `json:"udhariTakenOpenPaise"`
	OverdueUdhariCount   int               `json:"overdueUdhariCount"`
	Accounts             []CashAccount     `json:"accounts"`
}

// CashFlowReport totals cash-book movements in a period.
type CashFlowReport struct {
	From     time.Time      `json:"from"`
	To       time.Time      `json:"to"`
	Lines    []CashFlowLine `json:"lines"`
	InPaise  int64          `json:"inPaise"`
	OutPaise int64          `json:"outPaise"`
	NetPaise int64          `json:"netPaise"`
}

// InterestIncomeLine is the interest collected on one loan kind.
type InterestIncomeLine struct {
	Kind          LoanKind `json:"kind"`
	InterestPaise int64    `json:"interestPaise"`
	PaymentCount  int      `json:"paymentCount"`
}

// InterestIncomeReport is interest collected in a period.
type InterestIncomeReport struct {
	From       time.Time            `json:"from"`
	To         time.Time            `json:"to"`
	Lines      []InterestIncomeLine `json:"lines"`
	TotalPaise int64                `json:"totalPaise"`
}
