package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	loanRepo     portsrepo.LoanReader
	udhariRepo   portsrepo.UdhariReader
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, loanRepo portsrepo.LoanReader, udhariRepo portsrepo.UdhariReader, opts ...BaseOption) portssvc.CustomerSvcFacade {
	svc := &customerService{customerRepo: customerRepo, loanRepo: loanRepo, udhariRepo: udhariRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	now := s.Now()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     req.Address,
		IDProof:     req.IDProof,
		Notes:       req.Notes,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", customer.Name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, domain.CustomerFilter{
		Search:     strings.TrimSpace(params.Search),
		ActiveOnly: params.ActiveOnly,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.IDProof != nil {
		customer.IDProof = *req.IDProof
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.LastUpdatedAt = s.Now()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// DeactivateCustomer hides a customer from new business. Customers with open
// loans or udhari stay active until those are closed.
func (s *customerService) DeactivateCustomer(ctx context.Context, customerID string, userID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}

	openLoans, openUdhari, err := s.customerRepo.CountOpenItems(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count open items", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to check open items: %w", err)
	}
	if openLoans > 0 || openUdhari > 0 {
		return fmt.Errorf("%w: %d loans, %d udhari", domain.ErrCustomerHasOpenItems, openLoans, openUdhari)
	}

	if err := s.customerRepo.DeactivateCustomer(ctx, customerID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}
	s.LogInfo(ctx, "Customer deactivated", slog.String("customer_id", customerID))
	return nil
}

// GetCustomerSummary collects what a customer owes and is owed today.
func (s *customerService) GetCustomerSummary(ctx context.Context, customerID string) (*domain.CustomerSummary, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}

	loans, err := s.loanRepo.ListLoans(ctx, domain.LoanFilter{CustomerID: customerID, OpenOnly: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer loans", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list customer loans: %w", err)
	}
	udhari, err := s.udhariRepo.ListUdhari(ctx, domain.UdhariFilter{CustomerID: customerID, OpenOnly: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer udhari", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list customer udhari: %w", err)
	}

	today := s.Today()
	summary := &domain.CustomerSummary{Customer: *customer, OpenLoans: make([]domain.LoanPosition, 0, len(loans))}
	for i := range loans {
		pos := positionOf(&loans[i], today)
		summary.OpenLoans = append(summary.OpenLoans, pos)
		summary.LoanOutstandingPaise += pos.OutstandingPaise
		summary.LoanInterestDuePaise += pos.PendingInterestPaise
	}
	for i := range udhari {
		switch udhari[i].Direction {
		case domain.UdhariGiven:
			summary.UdhariGivenOpenPaise += udhari[i].OutstandingPaise()
		case domain.UdhariTaken:
			summary.UdhariTakenOpenPaise += udhari[i].OutstandingPaise()
		}
	}
	summary.OpenUdhariCount = len(udhari)
	return summary, nil
}

// positionOf accrues a loan to asOf without touching storage.
func positionOf(loan *domain.Loan, asOf time.Time) domain.LoanPosition {
	state := accounting.StateOf(loan)
	accrual := accounting.AccrueInterest(state, asOf)
	pos := domain.LoanPosition{
		LoanID:                 loan.LoanID,
		AsOf:                   asOf,
		OutstandingPaise:       loan.OutstandingPaise,
		PendingInterestPaise:   accrual.PendingInterestPaise,
		MonthsAccrued:          accrual.Months,
		InterestAccruedThrough: accrual.AccruedThrough,
		PayoffPaise:            accounting.Payoff(state, asOf),
		Status:                 loan.Status,
	}
	if !loan.IsClosed() {
		pos.Status = accounting.DeriveLoanStatus(loan.PrincipalPaidPaise, loan.InterestPaidPaise, loan.OutstandingPaise, accrual.PendingInterestPaise)
	}
	return pos
}
