package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves customers matching the filter, ordered by name.
	ListCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error)

	// CountOpenItems returns how many unclosed loans and unsettled udhari the customer has.
	CountOpenItems(ctx context.Context, customerID string) (openLoans int, openUdhari int, err error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's contact details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeactivateCustomer marks a customer as inactive.
	DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
