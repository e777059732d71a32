package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same user and time.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Metal is a precious metal handled by the shop.
type Metal string

const (
	Gold   Metal = "GOLD"
	Silver Metal = "SILVER"
)

// Valid reports whether m is a known metal.
func (m Metal) Valid() bool {
	return m == Gold || m == Silver
}

// PaymentMode records how money changed hands.
type PaymentMode string

const (
	PaymentCash PaymentMode = "CASH"
	PaymentBank PaymentMode = "BANK"
	PaymentUPI  PaymentMode = "UPI"
)

// Valid reports whether p is a known payment mode.
func (p PaymentMode) Valid() bool {
	switch p {
	case PaymentCash, PaymentBank, PaymentUPI:
		return true
	}
	return false
}

// AccountCode maps a payment mode onto the cash-book account it moves.
// UPI settles into the bank account.
func (p PaymentMode) AccountCode() AccountCode {
	if p == PaymentBank || p == PaymentUPI {
		return AccountBank
	}
	return AccountCash
}

// OrDefault returns p, or CASH when p is empty.
func (p PaymentMode) OrDefault() PaymentMode {
	if p == "" {
		return PaymentCash
	}
	return p
}

// DateOnly truncates t to a UTC calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
