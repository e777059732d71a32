package domain

import "time"

// UdhariDirection is GIVEN when the shop lent money and TAKEN when it borrowed.
type UdhariDirection string

const (
	UdhariGiven UdhariDirection = "GIVEN"
	UdhariTaken UdhariDirection = "TAKEN"
)

// Valid reports whether d is a known direction.
func (d UdhariDirection) Valid() bool {
	return d == UdhariGiven || d == UdhariTaken
}

// IssueDirection is the cash-book direction of the original IOU.
func (d UdhariDirection) IssueDirection() EntryDirection {
	if d == UdhariGiven {
		return DirectionOut
	}
	return DirectionIn
}

// SettlementDirection is the cash-book direction of a settlement.
func (d UdhariDirection) SettlementDirection() EntryDirection {
	return d.IssueDirection().Opposite()
}

// UdhariStatus tracks how much of an IOU has been settled.
type UdhariStatus string

const (
	UdhariOpen             UdhariStatus = "OPEN"
	UdhariPartiallySettled UdhariStatus = "PARTIALLY_SETTLED"
	UdhariSettled          UdhariStatus = "SETTLED"
)

// Udhari is an informal, interest-free IOU.
type Udhari struct {
	UdhariID     string          `json:"udhariID"`
	CFID         string          `json:"cfid"`
	CustomerID   string          `json:"customerID"`
	Direction    UdhariDirection `json:"direction"`
	AmountPaise  int64           `json:"amountPaise"`
	SettledPaise int64           `json:"settledPaise"`
	Status       UdhariStatus    `json:"status"`
	IssuedOn     time.Time       `json:"issuedOn"`
	DueOn        *time.Time      `json:"dueOn,omitempty"`
	PaymentMode  PaymentMode     `json:"paymentMode"`
	Notes        string          `json:"notes"`
	AuditFields
}

// OutstandingPaise is what remains to be settled.
func (u *Udhari) OutstandingPaise() int64 {
	return u.AmountPaise - u.SettledPaise
}

// IsOverdue reports whether the IOU is unsettled past its due date.
func (u *Udhari) IsOverdue(today time.Time) bool {
	if u.DueOn == nil || u.Status == UdhariSettled {
		return false
	}
	return DateOnly(*u.DueOn).Before(DateOnly(today))
}

// StatusFor derives the status from the settled amount.
func (u *Udhari) StatusFor(settled int64) UdhariStatus {
	switch {
	case settled >= u.AmountPaise:
		return UdhariSettled
	case settled > 0:
		return UdhariPartiallySettled
	}
	return UdhariOpen
}

// UdhariSettlement is a single (partial) settlement of an IOU.
type UdhariSettlement struct {
	SettlementID string      `json:"settlementID"`
	UdhariID     string      `json:"udhariID"`
	AmountPaise  int64       `json:"amountPaise"`
	PaidOn       time.Time   `json:"paidOn"`
	PaymentMode  PaymentMode `json:"paymentMode"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"createdAt"`
	CreatedBy    string      `json:"createdBy"`
}

// UdhariFilter narrows udhari listings.
type UdhariFilter struct {
	Direction   UdhariDirection
	Status      UdhariStatus
	CustomerID  string
	OpenOnly    bool
	OverdueAsOf *time.Time
	Limit       int
	Offset      int
}
