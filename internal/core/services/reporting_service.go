package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	loanRepo      portsrepo.LoanReader
	accountRepo   portsrepo.CashAccountReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, loanRepo portsrepo.LoanReader, accountRepo portsrepo.CashAccountReader, opts ...BaseOption) portssvc.ReportingService {
	svc := &reportingService{reportingRepo: reportingRepo, loanRepo: loanRepo, accountRepo: accountRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

var reportedLoanKinds = []domain.LoanKind{domain.CashLoan, domain.GoldLoan, domain.SilverLoan}

// Summary reports the open loan book, udhari and account balances on asOf.
// Pending interest is accrued per loan up to asOf.
func (s *reportingService) Summary(ctx context.Context, asOf time.Time) (*domain.SummaryReport, error) {
	asOf = domain.DateOnly(asOf)

	loans, err := s.loanRepo.ListOpenLoans(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to list open loans for summary")
		return nil, fmt.Errorf("failed to list open loans: %w", err)
	}

	byKind := make(map[domain.LoanKind]*domain.LoanKindSummary, len(reportedLoanKinds))
	report := &domain.SummaryReport{AsOf: asOf, Loans: make([]domain.LoanKindSummary, len(reportedLoanKinds))}
	for i, kind := range reportedLoanKinds {
		report.Loans[i].Kind = kind
		byKind[kind] = &report.Loans[i]
	}
	for i := range loans {
		line, ok := byKind[loans[i].Kind]
		if !ok {
			continue
		}
		pos := positionOf(&loans[i], asOf)
		line.OpenCount++
		line.OutstandingPaise += pos.OutstandingPaise
		line.PendingInterestPaise += pos.PendingInterestPaise
	}

	report.UdhariGivenOpenPaise, report.UdhariTakenOpenPaise, report.OverdueUdhariCount, err = s.reportingRepo.GetOpenUdhariTotals(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to total open udhari")
		return nil, fmt.Errorf("failed to total open udhari: %w", err)
	}

	report.Accounts, err = s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for summary")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.LogDebug(ctx, "Summary report built", slog.Int("open_loans", len(loans)))
	return report, nil
}

// CashFlow totals cash-book entries by source and direction.
func (s *reportingService) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	if from.After(to) {
		return nil, domain.ErrDateRangeInvalid
	}
	lines, err := s.reportingRepo.GetCashFlow(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get cash flow")
		return nil, fmt.Errorf("failed to get cash flow: %w", err)
	}

	report := &domain.CashFlowReport{From: from, To: to, Lines: lines}
	for _, line := range lines {
		if line.Direction == domain.DirectionIn {
			report.InPaise += line.AmountPaise
		} else {
			report.OutPaise += line.AmountPaise
		}
	}
	report.NetPaise = report.InPaise - report.OutPaise
	return report, nil
}

// InterestIncome totals interest collected per loan kind.
func (s *reportingService) InterestIncome(ctx context.Context, from, to time.Time) (*domain.InterestIncomeReport, error) {
	if from.After(to) {
		return nil, domain.ErrDateRangeInvalid
	}
	lines, err := s.reportingRepo.GetInterestIncome(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get interest income")
		return nil, fmt.Errorf("failed to get interest income: %w", err)
	}

	report := &domain.InterestIncomeReport{From: from, To: to, Lines: lines}
	for _, line := range lines {
		report.TotalPaise += line.InterestPaise
	}
	return report, nil
}
