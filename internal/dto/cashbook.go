package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// AdjustAccountRequest posts an opening balance or a manual correction.
type AdjustAccountRequest struct {
	Direction   domain.EntryDirection `json:"direction" binding:"required,oneof=IN OUT"`
	AmountPaise int64                 `json:"amountPaise" binding:"required,gt=0"`
	EntryDate   string                `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Narration   string                `json:"narration" binding:"required,max=500"`
}

// ListEntriesParams defines query parameters for listing cash-book entries.
type ListEntriesParams struct {
	From      string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// CashAccountResponse defines the data returned for a money account.
type CashAccountResponse struct {
	Code          domain.AccountCode `json:"code"`
	Name          string             `json:"name"`
	BalancePaise  int64              `json:"balancePaise"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToCashAccountResponse converts a domain.CashAccount
func ToCashAccountResponse(a *domain.CashAccount) CashAccountResponse {
	return CashAccountResponse{
		Code:          a.Code,
		Name:          a.Name,
		BalancePaise:  a.BalancePaise,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToListCashAccountsResponse converts a slice of domain.CashAccount
func ToListCashAccountsResponse(list []domain.CashAccount) []CashAccountResponse {
	res := make([]CashAccountResponse, len(list))
	for i := range list {
		res[i] = ToCashAccountResponse(&list[i])
	}
	return res
}

// LedgerEntryResponse defines the data returned for a cash-book entry.
type LedgerEntryResponse struct {
	EntryID             string                `json:"entryID"`
	AccountCode         domain.AccountCode    `json:"accountCode"`
	EntryDate           string                `json:"entryDate"`
	Source              domain.EntrySource    `json:"source"`
	Direction           domain.EntryDirection `json:"direction"`
	AmountPaise         int64                 `json:"amountPaise"`
	RunningBalancePaise int64                 `json:"runningBalancePaise"`
	ReferenceID         string                `json:"referenceID"`
	CustomerID          *string               `json:"customerID,omitempty"`
	Narration           string                `json:"narration"`
	CreatedAt           time.Time             `json:"createdAt"`
	CreatedBy           string                `json:"createdBy"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:             e.EntryID,
		AccountCode:         e.AccountCode,
		EntryDate:           FormatDate(e.EntryDate),
		Source:              e.Source,
		Direction:           e.Direction,
		AmountPaise:         e.AmountPaise,
		RunningBalancePaise: e.RunningBalancePaise,
		ReferenceID:         e.ReferenceID,
		CustomerID:          e.CustomerID,
		Narration:           e.Narration,
		CreatedAt:           e.CreatedAt,
		CreatedBy:           e.CreatedBy,
	}
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToListEntriesResponse converts a page of domain.LedgerEntry
func ToListEntriesResponse(list []domain.LedgerEntry, nextToken *string) ListEntriesResponse {
	res := make([]LedgerEntryResponse, len(list))
	for i := range list {
		res[i] = ToLedgerEntryResponse(&list[i])
	}
	return ListEntriesResponse{Entries: res, NextToken: nextToken}
}
