package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// CreateUdhariRequest defines the data needed to record an IOU.
type CreateUdhariRequest struct {
	CustomerID  string                 `json:"customerID" binding:"required,uuid"`
	Direction   domain.UdhariDirection `json:"direction" binding:"required,oneof=GIVEN TAKEN"`
	AmountPaise int64                  `json:"amountPaise" binding:"required,gt=0"`
	IssuedOn    string                 `json:"issuedOn" binding:"required,datetime=2006-01-02"`
	DueOn       string                 `json:"dueOn" binding:"omitempty,datetime=2006-01-02"`
	PaymentMode domain.PaymentMode     `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes       string                 `json:"notes"`
}

// SettleUdhariRequest records a (partial) settlement.
type SettleUdhariRequest struct {
	AmountPaise int64              `json:"amountPaise" binding:"required,gt=0"`
	PaidOn      string             `json:"paidOn" binding:"required,datetime=2006-01-02"`
	PaymentMode domain.PaymentMode `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes       string             `json:"notes"`
}

// ListUdhariParams defines query parameters for listing udhari.
type ListUdhariParams struct {
	Direction  domain.UdhariDirection `form:"direction" binding:"omitempty,oneof=GIVEN TAKEN"`
	Status     domain.UdhariStatus    `form:"status" binding:"omitempty,oneof=OPEN PARTIALLY_SETTLED SETTLED"`
	CustomerID string                 `form:"customerID" binding:"omitempty,uuid"`
	OpenOnly   bool                   `form:"open"`
	Overdue    bool                   `form:"overdue"`
	Limit      int                    `form:"limit,default=20" binding:"min=1,max=200"`
	Offset     int                    `form:"offset,default=0" binding:"min=0"`
}

// UdhariResponse defines the data returned for an IOU.
type UdhariResponse struct {
	UdhariID         string                 `json:"udhariID"`
	CFID             string                 `json:"cfid"`
	CustomerID       string                 `json:"customerID"`
	Direction        domain.UdhariDirection `json:"direction"`
	AmountPaise      int64                  `json:"amountPaise"`
	SettledPaise     int64                  `json:"settledPaise"`
	OutstandingPaise int64                  `json:"outstandingPaise"`
	Status           domain.UdhariStatus    `json:"status"`
	IsOverdue        bool                   `json:"isOverdue"`
	IssuedOn         string                 `json:"issuedOn"`
	DueOn            *string                `json:"dueOn,omitempty"`
	PaymentMode      domain.PaymentMode     `json:"paymentMode"`
	Notes            string                 `json:"notes"`
	CreatedAt        time.Time              `json:"createdAt"`
	CreatedBy        string                 `json:"createdBy"`
	LastUpdatedAt    time.Time              `json:"lastUpdatedAt"`
}

// ListUdhariResponse wraps the list of IOUs.
type ListUdhariResponse struct {
	Udhari []UdhariResponse `json:"udhari"`
}

// ToUdhariResponse converts a domain.Udhari; today drives the overdue flag.
func ToUdhariResponse(u *domain.Udhari, today time.Time) UdhariResponse {
	return UdhariResponse{
		UdhariID:         u.UdhariID,
		CFID:             u.CFID,
		CustomerID:       u.CustomerID,
		Direction:        u.Direction,
		AmountPaise:      u.AmountPaise,
		SettledPaise:     u.SettledPaise,
		OutstandingPaise: u.OutstandingPaise(),
		Status:           u.Status,
		IsOverdue:        u.IsOverdue(today),
		IssuedOn:         FormatDate(u.IssuedOn),
		DueOn:            FormatOptionalDate(u.DueOn),
		PaymentMode:      u.PaymentMode,
		Notes:            u.Notes,
		CreatedAt:        u.CreatedAt,
		CreatedBy:        u.CreatedBy,
		LastUpdatedAt:    u.LastUpdatedAt,
	}
}

// ToListUdhariResponse converts a slice of domain.Udhari
func ToListUdhariResponse(list []domain.Udhari, today time.Time) ListUdhariResponse {
	res := make([]UdhariResponse, len(list))
	for i := range list {
		res[i] = ToUdhariResponse(&list[i], today)
	}
	return ListUdhariResponse{Udhari: res}
}

// UdhariSettlementResponse defines the data returned for a settlement.
type UdhariSettlementResponse struct {
	SettlementID string             `json:"settlementID"`
	UdhariID     string             `json:"udhariID"`
	AmountPaise  int64              `json:"amountPaise"`
	PaidOn       string             `json:"paidOn"`
	PaymentMode  domain.PaymentMode `json:"paymentMode"`
	Notes        string             `json:"notes"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// ToUdhariSettlementResponse converts a domain.UdhariSettlement
func ToUdhariSettlementResponse(s *domain.UdhariSettlement) UdhariSettlementResponse {
	return UdhariSettlementResponse{
		SettlementID: s.SettlementID,
		UdhariID:     s.UdhariID,
		AmountPaise:  s.AmountPaise,
		PaidOn:       FormatDate(s.PaidOn),
		PaymentMode:  s.PaymentMode,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		CreatedBy:    s.CreatedBy,
	}
}

// ListSettlementsResponse wraps an IOU's settlements.
type ListSettlementsResponse struct {
	Settlements []UdhariSettlementResponse `json:"settlements"`
}

// ToListSettlementsResponse converts a slice of domain.UdhariSettlement
func ToListSettlementsResponse(list []domain.UdhariSettlement) ListSettlementsResponse {
	res := make([]UdhariSettlementResponse, len(list))
	for i := range list {
		res[i] = ToUdhariSettlementResponse(&list[i])
	}
	return ListSettlementsResponse{Settlements: res}
}

// SettleUdhariResponse returns the settlement and the IOU after it.
type SettleUdhariResponse struct {
	Settlement UdhariSettlementResponse `json:"settlement"`
	Udhari     UdhariResponse           `json:"udhari"`
}
