package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/metrics"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxMonthlyRate = decimal.NewFromInt(100)

type loanService struct {
	BaseService
	loanRepo      portsrepo.LoanRepositoryFacade
	customerRepo  portsrepo.CustomerReader
	metalRateRepo portsrepo.MetalRateReader
	shopRepo      portsrepo.ShopRepositoryFacade
	cashBook      portssvc.CashBookPoster
	txManager     portsrepo.TransactionManager
}

// LoanDeps groups what the loan service reads from and writes to.
type LoanDeps struct {
	LoanRepo      portsrepo.LoanRepositoryFacade
	CustomerRepo  portsrepo.CustomerReader
	MetalRateRepo portsrepo.MetalRateReader
	ShopRepo      portsrepo.ShopRepositoryFacade
	CashBook      portssvc.CashBookPoster
	TxManager     portsrepo.TransactionManager
}

// NewLoanService creates the loan service.
func NewLoanService(deps LoanDeps, opts ...BaseOption) portssvc.LoanSvcFacade {
	svc := &loanService{
		loanRepo:      deps.LoanRepo,
		customerRepo:  deps.CustomerRepo,
		metalRateRepo: deps.MetalRateRepo,
		shopRepo:      deps.ShopRepo,
		cashBook:      deps.CashBook,
		txManager:     deps.TxManager,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// CreateLoan disburses a loan and posts the cash paid out.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrLoanKindInvalid, req.Kind)
	}
	if req.PrincipalPaise <= 0 {
		return nil, domain.ErrLoanPrincipalInvalid
	}
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	mode := req.PaymentMode.OrDefault()
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrPaymentModeInvalid, req.PaymentMode)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", req.CustomerID, err)
	}
	if !customer.IsActive {
		return nil, domain.ErrCustomerInactive
	}

	settings, err := s.shopRepo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shop settings")
		return nil, fmt.Errorf("failed to get shop settings: %w", err)
	}
	rate := settings.DefaultRateFor(req.Kind)
	if req.MonthlyRatePct != nil {
		rate = *req.MonthlyRatePct
	}
	if rate.IsNegative() || rate.GreaterThan(maxMonthlyRate) {
		return nil, domain.ErrLoanRateInvalid
	}

	now := s.Now()
	loan := domain.Loan{
		LoanID:                 uuid.NewString(),
		Kind:                   req.Kind,
		CustomerID:             customer.CustomerID,
		PrincipalPaise:         req.PrincipalPaise,
		OutstandingPaise:       req.PrincipalPaise,
		MonthlyRatePct:         rate,
		StartDate:              startDate,
		InterestAccruedThrough: startDate,
		Status:                 domain.LoanActive,
		PaymentMode:            mode,
		Notes:                  req.Notes,
		AuditFields:            domain.NewAuditFields(userID, now),
	}
	loan.Items, err = s.buildItems(ctx, &loan, req.Items)
	if err != nil {
		return nil, err
	}
	if err := loan.ValidateCollateral(); err != nil {
		return nil, err
	}
	if _, isMetalLoan := loan.Kind.Metal(); isMetalLoan && settings.MaxLoanToValuePct.IsPositive() {
		if allowed := accounting.MaxPrincipal(loan.TotalAppraisedPaise(), settings.MaxLoanToValuePct); loan.PrincipalPaise > allowed {
			return nil, fmt.Errorf("%w: at most %s against %s of collateral",
				domain.ErrLoanToValueExceeded, money.FormatINR(allowed), money.FormatINR(loan.TotalAppraisedPaise()))
		}
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.loanRepo.SaveLoan(ctx, &loan); err != nil {
			return fmt.Errorf("failed to save loan: %w", err)
		}
		_, err := s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: loan.PaymentMode,
			EntryDate:   loan.StartDate,
			Source:      domain.SourceLoanDisbursement,
			Direction:   domain.DirectionOut,
			AmountPaise: loan.PrincipalPaise,
			ReferenceID: loan.LoanID,
			CustomerID:  &loan.CustomerID,
			Narration:   fmt.Sprintf("Loan %s disbursed", loan.CFID),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create loan", slog.String("customer_id", loan.CustomerID), slog.String("kind", string(loan.Kind)))
		return nil, err
	}

	metrics.LoansDisbursedPaise.WithLabelValues(string(loan.Kind)).Add(float64(loan.PrincipalPaise))
	s.Publish(ctx, domain.EventLoanCreated, loan.LoanID, userID, dto.ToLoanResponse(&loan))
	s.LogInfo(ctx, "Loan created",
		slog.String("loan_id", loan.LoanID),
		slog.String("cfid", loan.CFID),
		slog.String("kind", string(loan.Kind)),
		slog.Int64("principal_paise", loan.PrincipalPaise))
	return &loan, nil
}

// buildItems turns the request items into collateral, appraising any item
// without a value at the metal rate in force on the start date.
func (s *loanService) buildItems(ctx context.Context, loan *domain.Loan, reqs []dto.CollateralItemRequest) ([]domain.CollateralItem, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	loanMetal, _ := loan.Kind.Metal()
	rates := make(map[domain.Metal]int64)

	items := make([]domain.CollateralItem, 0, len(reqs))
	for _, r := range reqs {
		item := domain.CollateralItem{
			ItemID:           uuid.NewString(),
			LoanID:           loan.LoanID,
			Description:      r.Description,
			Metal:            r.Metal,
			GrossWeightGrams: r.GrossWeightGrams,
			NetWeightGrams:   r.NetWeightGrams,
			PurityPct:        r.PurityPct,
			Status:           domain.ItemHeld,
		}
		if item.Metal == "" {
			item.Metal = loanMetal
		}
		if r.AppraisedValuePaise != nil {
			item.AppraisedValuePaise = *r.AppraisedValuePaise
		} else if item.Metal.Valid() && item.NetWeightGrams.IsPositive() && item.PurityPct.IsPositive() {
			rate, ok := rates[item.Metal]
			if !ok {
				found, err := s.metalRateRepo.FindLatestRate(ctx, item.Metal, loan.StartDate)
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: %s on %s", domain.ErrMetalRateMissing, item.Metal, dto.FormatDate(loan.StartDate))
				}
				if err != nil {
					return nil, fmt.Errorf("failed to get %s rate: %w", item.Metal, err)
				}
				rate = found.RatePerGramPaise
				rates[item.Metal] = rate
			}
			item.AppraisedValuePaise = accounting.MetalValue(accounting.FineWeight(item.NetWeightGrams, item.PurityPct), rate)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *loanService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %s: %w", loanID, err)
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx, domain.LoanFilter{
		Kind:       params.Kind,
		Status:     params.Status,
		CustomerID: params.CustomerID,
		OpenOnly:   params.OpenOnly,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

// GetLoanPosition reports what the loan would owe on asOf. Nothing is stored.
func (s *loanService) GetLoanPosition(ctx context.Context, loanID string, asOf time.Time) (*domain.LoanPosition, error) {
	loan, err := s.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	pos := positionOf(loan, domain.DateOnly(asOf))
	return &pos, nil
}

func (s *loanService) ListLoanPayments(ctx context.Context, loanID string) ([]domain.LoanPayment, error) {
	if _, err := s.GetLoan(ctx, loanID); err != nil {
		return nil, err
	}
	payments, err := s.loanRepo.ListPaymentsByLoan(ctx, loanID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loan payments", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}
	return payments, nil
}

// RepayLoan accrues interest up to the payment date, splits the payment,
// and records it with its cash-book entry in one transaction.
func (s *loanService) RepayLoan(ctx context.Context, loanID string, req dto.RepayLoanRequest, userID string) (*domain.LoanPayment, *domain.Loan, error) {
	paidOn, err := dto.ParseDate(req.PaidOn)
	if err != nil {
		return nil, nil, err
	}
	mode := req.PaymentMode.OrDefault()
	if !mode.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrPaymentModeInvalid, req.PaymentMode)
	}

	var (
		loan    *domain.Loan
		payment domain.LoanPayment
		closed  bool
	)
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		loan, err = s.loanRepo.FindLoanByIDForUpdate(ctx, loanID)
		if err != nil {
			return fmt.Errorf("failed to lock loan %s: %w", loanID, err)
		}
		if loan.IsClosed() {
			return domain.ErrLoanClosed
		}
		if paidOn.Before(domain.DateOnly(loan.StartDate)) || paidOn.Before(domain.DateOnly(loan.InterestAccruedThrough)) {
			return fmt.Errorf("%w: paid on %s", domain.ErrPaymentBeforeAccrual, req.PaidOn)
		}

		accrual := accounting.AccrueInterest(accounting.StateOf(loan), paidOn)
		alloc, err := accounting.AllocateRepayment(accrual.PendingInterestPaise, loan.OutstandingPaise, accounting.RepaymentRequest{
			AmountPaise:    req.AmountPaise,
			PrincipalPaise: req.PrincipalPaise,
			InterestPaise:  req.InterestPaise,
		})
		if err != nil {
			return err
		}

		loan.InterestAccruedThrough = accrual.AccruedThrough
		loan.AccruedInterestPaise = accrual.PendingInterestPaise - alloc.InterestPaise
		loan.OutstandingPaise -= alloc.PrincipalPaise
		loan.InterestPaidPaise += alloc.InterestPaise
		loan.PrincipalPaidPaise += alloc.PrincipalPaise
		loan.Status = accounting.DeriveLoanStatus(loan.PrincipalPaidPaise, loan.InterestPaidPaise, loan.OutstandingPaise, loan.AccruedInterestPaise)
		closed = loan.IsClosed()
		if closed {
			loan.ClosedOn = &paidOn
		}
		loan.LastUpdatedAt = s.Now()
		loan.LastUpdatedBy = userID

		release, err := itemsToRelease(loan, req.ReleaseItemIDs, closed)
		if err != nil {
			return err
		}

		if err := s.loanRepo.UpdateLoanBalances(ctx, *loan); err != nil {
			return fmt.Errorf("failed to update loan balances: %w", err)
		}
		if len(release) > 0 {
			if err := s.loanRepo.ReleaseItems(ctx, loan.LoanID, release, paidOn); err != nil {
				return fmt.Errorf("failed to release collateral: %w", err)
			}
			for i := range loan.Items {
				if slices.Contains(release, loan.Items[i].ItemID) {
					loan.Items[i].Status = domain.ItemReturned
					loan.Items[i].ReturnedOn = &paidOn
				}
			}
		}

		payment = domain.LoanPayment{
			PaymentID:       uuid.NewString(),
			LoanID:          loan.LoanID,
			PaidOn:          paidOn,
			PrincipalPaise:  alloc.PrincipalPaise,
			InterestPaise:   alloc.InterestPaise,
			PaymentMode:     mode,
			Notes:           req.Notes,
			ReleasedItemIDs: release,
			CreatedAt:       loan.LastUpdatedAt,
			CreatedBy:       userID,
		}
		if err := s.loanRepo.SavePayment(ctx, payment); err != nil {
			return fmt.Errorf("failed to save loan payment: %w", err)
		}

		_, err = s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: mode,
			EntryDate:   paidOn,
			Source:      domain.SourceLoanRepayment,
			Direction:   domain.DirectionIn,
			AmountPaise: payment.TotalPaise(),
			ReferenceID: loan.LoanID,
			CustomerID:  &loan.CustomerID,
			Narration:   fmt.Sprintf("Loan %s repayment", loan.CFID),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to repay loan", slog.String("loan_id", loanID))
		return nil, nil, err
	}

	kind := string(loan.Kind)
	metrics.LoanRepaymentsPaise.WithLabelValues(kind, "principal").Add(float64(payment.PrincipalPaise))
	metrics.LoanRepaymentsPaise.WithLabelValues(kind, "interest").Add(float64(payment.InterestPaise))
	s.Publish(ctx, domain.EventLoanRepaid, loan.LoanID, userID, dto.ToLoanPaymentResponse(&payment))
	if closed {
		metrics.LoansClosed.WithLabelValues(kind).Inc()
		s.Publish(ctx, domain.EventLoanClosed, loan.LoanID, userID, dto.ToLoanResponse(loan))
	}

	s.LogInfo(ctx, "Loan repayment recorded",
		slog.String("loan_id", loan.LoanID),
		slog.Int64("principal_paise", payment.PrincipalPaise),
		slog.Int64("interest_paise", payment.InterestPaise),
		slog.String("status", string(loan.Status)))
	return &payment, loan, nil
}

// itemsToRelease checks the requested items are still held. Closing a loan
// hands back everything that is left.
func itemsToRelease(loan *domain.Loan, requested []string, closing bool) ([]string, error) {
	held := loan.HeldItems()
	heldIDs := make([]string, len(held))
	for i, item := range held {
		heldIDs[i] = item.ItemID
	}
	if closing {
		return heldIDs, nil
	}

	release := make([]string, 0, len(requested))
	for _, id := range requested {
		if !slices.Contains(heldIDs, id) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotHeld, id)
		}
		if !slices.Contains(release, id) {
			release = append(release, id)
		}
	}
	return release, nil
}

// UpdateLoan changes the notes on a loan. Amounts, dates and rates are fixed
// once the loan has been disbursed.
func (s *loanService) UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest, userID string) (*domain.Loan, error) {
	loan, err := s.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if req.Notes == nil {
		return loan, nil
	}

	now := s.Now()
	if err := s.loanRepo.UpdateLoanNotes(ctx, loanID, *req.Notes, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update loan notes", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}
	loan.Notes = *req.Notes
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = userID
	return loan, nil
}
