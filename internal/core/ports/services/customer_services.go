package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error)

	// GetCustomerSummary returns open loan positions and udhari totals as of today.
	GetCustomerSummary(ctx context.Context, customerID string) (*domain.CustomerSummary, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)

	// DeactivateCustomer refuses while the customer has open loans or udhari.
	DeactivateCustomer(ctx context.Context, customerID string, userID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
