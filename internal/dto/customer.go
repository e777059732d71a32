package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Address string `json:"address"`
	IDProof string `json:"idProof"`
	Notes   string `json:"notes"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address"`
	IDProof *string `json:"idProof"`
	Notes   *string `json:"notes"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Search     string `form:"q"`
	ActiveOnly bool   `form:"active"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=200"`
	Offset     int    `form:"offset,default=0" binding:"min=0"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string    `json:"customerID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	IDProof       string    `json:"idProof"`
	Notes         string    `json:"notes"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		IDProof:       c.IDProof,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListCustomersResponse converts a slice of domain.Customer
func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: res}
}

// CustomerSummaryResponse is what a customer owes and is owed.
type CustomerSummaryResponse struct {
	Customer             CustomerResponse       `json:"customer"`
	OpenLoans            []LoanPositionResponse `json:"openLoans"`
	LoanOutstandingPaise int64                  `json:"loanOutstandingPaise"`
	LoanInterestDuePaise int64                  `json:"loanInterestDuePaise"`
	UdhariGivenOpenPaise int64                  `json:"udhariGivenOpenPaise"`
	UdhariTakenOpenPaise int64                  `json:"udhariTakenOpenPaise"`
	OpenUdhariCount      int                    `json:"openUdhariCount"`
}

// ToCustomerSummaryResponse converts a domain.CustomerSummary
func ToCustomerSummaryResponse(s *domain.CustomerSummary) CustomerSummaryResponse {
	positions := make([]LoanPositionResponse, len(s.OpenLoans))
	for i := range s.OpenLoans {
		positions[i] = ToLoanPositionResponse(&s.OpenLoans[i])
	}
	return CustomerSummaryResponse{
		Customer:             ToCustomerResponse(&s.Customer),
		OpenLoans:            positions,
		LoanOutstandingPaise: s.LoanOutstandingPaise,
		LoanInterestDuePaise: s.LoanInterestDuePaise,
		UdhariGivenOpenPaise: s.UdhariGivenOpenPaise,
		UdhariTakenOpenPaise: s.UdhariTakenOpenPaise,
		OpenUdhariCount:      s.OpenUdhariCount,
	}
}
