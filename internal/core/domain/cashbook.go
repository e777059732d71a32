package domain

import "time"

// AccountCode identifies one of the shop's money accounts.
type AccountCode string

const (
	AccountCash AccountCode = "CASH"
	AccountBank AccountCode = "BANK"
)

// Valid reports whether c is a known account.
func (c AccountCode) Valid() bool {
	return c == AccountCash || c == AccountBank
}

// EntryDirection is IN for money received and OUT for money paid.
type EntryDirection string

const (
	DirectionIn  EntryDirection = "IN"
	DirectionOut EntryDirection = "OUT"
)

// Opposite returns the reversing direction.
func (d EntryDirection) Opposite() EntryDirection {
	if d == DirectionIn {
		return DirectionOut
	}
	return DirectionIn
}

// EntrySource names the operation that produced a cash-book entry.
type EntrySource string

const (
	SourceLoanDisbursement EntrySource = "LOAN_DISBURSEMENT"
	SourceLoanRepayment    EntrySource = "LOAN_REPAYMENT"
	SourceTrade            EntrySource = "TRADE"
	SourceTradeVoid        EntrySource = "TRADE_VOID"
	SourceUdhari           EntrySource = "UDHARI"
	SourceUdhariSettlement EntrySource = "UDHARI_SETTLEMENT"
	SourceExpense          EntrySource = "EXPENSE"
	SourceExpenseReversal  EntrySource = "EXPENSE_REVERSAL"
	SourceAdjustment       EntrySource = "ADJUSTMENT"
)

// CashAccount is a money account with its persisted balance.
type CashAccount struct {
	Code         AccountCode `json:"code"` // Primary Key
	Name         string      `json:"name"`
	BalancePaise int64       `json:"balancePaise"`
	AuditFields
}

// LedgerEntry is one line in the cash book. RunningBalancePaise is the
// account balance immediately after the entry was posted.
type LedgerEntry struct {
	EntryID             string         `json:"entryID"`
	AccountCode         AccountCode    `json:"accountCode"`
	EntryDate           time.Time      `json:"entryDate"`
	Source              EntrySource    `json:"source"`
	Direction           EntryDirection `json:"direction"`
	AmountPaise         int64          `json:"amountPaise"` // Always positive
	RunningBalancePaise int64          `json:"runningBalancePaise"`
	ReferenceID         string         `json:"referenceID"`
	CustomerID          *string        `json:"customerID,omitempty"`
	Narration           string         `json:"narration"`
	CreatedAt           time.Time      `json:"createdAt"`
	CreatedBy           string         `json:"createdBy"`
}

// Posting is the request to record a money movement; the cash book fills in
// the entry ID, account and running balance.
type Posting struct {
	PaymentMode PaymentMode
	AccountCode AccountCode // Overrides the account derived from PaymentMode
	EntryDate   time.Time
	Source      EntrySource
	Direction   EntryDirection
	AmountPaise int64
	ReferenceID string
	CustomerID  *string
	Narration   string
}

// LedgerFilter narrows cash-book listings.
type LedgerFilter struct {
	AccountCode AccountCode
	From        *time.Time
	To          *time.Time
	Limit       int
	NextToken   *string
}

// CashFlowLine is the total moved by one source in one direction.
type CashFlowLine struct {
	Source      EntrySource    `json:"source"`
	Direction   EntryDirection `json:"direction"`
	AmountPaise int64          `json:"amountPaise"`
	Count       int            `json:"count"`
}
