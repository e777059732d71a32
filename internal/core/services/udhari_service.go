package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type udhariService struct {
	BaseService
	udhariRepo   portsrepo.UdhariRepositoryFacade
	customerRepo portsrepo.CustomerReader
	cashBook     portssvc.CashBookPoster
	txManager    portsrepo.TransactionManager
}

// NewUdhariService creates the IOU service.
func NewUdhariService(
	udhariRepo portsrepo.UdhariRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	cashBook portssvc.CashBookPoster,
	txManager portsrepo.TransactionManager,
	opts ...BaseOption,
) portssvc.UdhariSvcFacade {
	svc := &udhariService{udhariRepo: udhariRepo, customerRepo: customerRepo, cashBook: cashBook, txManager: txManager}
	svc.apply(opts)
	return svc
}

var _ portssvc.UdhariSvcFacade = (*udhariService)(nil)

// CreateUdhari records money lent to (GIVEN) or borrowed from (TAKEN) a
// customer. Udhari carries no interest.
func (s *udhariService) CreateUdhari(ctx context.Context, req dto.CreateUdhariRequest, userID string) (*domain.Udhari, error) {
	if !req.Direction.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUdhariDirectionInvalid, req.Direction)
	}
	if req.AmountPaise <= 0 {
		return nil, domain.ErrAmountInvalid
	}
	issuedOn, err := dto.ParseDate(req.IssuedOn)
	if err != nil {
		return nil, err
	}
	dueOn, err := dto.ParseOptionalDate(req.DueOn)
	if err != nil {
		return nil, err
	}
	if dueOn != nil && dueOn.Before(issuedOn) {
		return nil, domain.ErrDueBeforeIssue
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

	udhari := domain.Udhari{
		UdhariID:    uuid.NewString(),
		CustomerID:  customer.CustomerID,
		Direction:   req.Direction,
		AmountPaise: req.AmountPaise,
		Status:      domain.UdhariOpen,
		IssuedOn:    issuedOn,
		DueOn:       dueOn,
		PaymentMode: mode,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.udhariRepo.SaveUdhari(ctx, &udhari); err != nil {
			return fmt.Errorf("failed to save udhari: %w", err)
		}
		_, err := s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: mode,
			EntryDate:   issuedOn,
			Source:      domain.SourceUdhari,
			Direction:   udhari.Direction.IssueDirection(),
			AmountPaise: udhari.AmountPaise,
			ReferenceID: udhari.UdhariID,
			CustomerID:  &udhari.CustomerID,
			Narration:   fmt.Sprintf("Udhari %s %s", udhari.CFID, udhari.Direction),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create udhari", slog.String("customer_id", udhari.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Udhari created",
		slog.String("udhari_id", udhari.UdhariID),
		slog.String("direction", string(udhari.Direction)),
		slog.Int64("amount_paise", udhari.AmountPaise))
	return &udhari, nil
}

func (s *udhariService) GetUdhari(ctx context.Context, udhariID string) (*domain.Udhari, error) {
	udhari, err := s.udhariRepo.FindUdhariByID(ctx, udhariID)
	if err != nil {
		return nil, fmt.Errorf("failed to get udhari %s: %w", udhariID, err)
	}
	return udhari, nil
}

func (s *udhariService) ListUdhari(ctx context.Context, params dto.ListUdhariParams) ([]domain.Udhari, error) {
	filter := domain.UdhariFilter{
		Direction:  params.Direction,
		Status:     params.Status,
		CustomerID: params.CustomerID,
		OpenOnly:   params.OpenOnly,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.Overdue {
		today := s.Today()
		filter.OverdueAsOf = &today
	}

	list, err := s.udhariRepo.ListUdhari(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list udhari")
		return nil, fmt.Errorf("failed to list udhari: %w", err)
	}
	return list, nil
}

func (s *udhariService) ListSettlements(ctx context.Context, udhariID string) ([]domain.UdhariSettlement, error) {
	if _, err := s.GetUdhari(ctx, udhariID); err != nil {
		return nil, err
	}
	settlements, err := s.udhariRepo.ListSettlements(ctx, udhariID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list udhari settlements", slog.String("udhari_id", udhariID))
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, nil
}

// SettleUdhari records a full or partial settlement and moves the cash back.
func (s *udhariService) SettleUdhari(ctx context.Context, udhariID string, req dto.SettleUdhariRequest, userID string) (*domain.UdhariSettlement, *domain.Udhari, error) {
	if req.AmountPaise <= 0 {
		return nil, nil, domain.ErrAmountInvalid
	}
	paidOn, err := dto.ParseDate(req.PaidOn)
	if err != nil {
		return nil, nil, err
	}
	mode := req.PaymentMode.OrDefault()
	if !mode.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrPaymentModeInvalid, req.PaymentMode)
	}

	var (
		udhari     *domain.Udhari
		settlement domain.UdhariSettlement
	)
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		udhari, err = s.udhariRepo.FindUdhariByIDForUpdate(ctx, udhariID)
		if err != nil {
			return fmt.Errorf("failed to lock udhari %s: %w", udhariID, err)
		}
		if udhari.Status == domain.UdhariSettled {
			return domain.ErrUdhariSettled
		}
		if req.AmountPaise > udhari.OutstandingPaise() {
			return fmt.Errorf("%w: %d paise outstanding", domain.ErrSettlementExceedsDue, udhari.OutstandingPaise())
		}

		now := s.Now()
		udhari.SettledPaise += req.AmountPaise
		udhari.Status = udhari.StatusFor(udhari.SettledPaise)
		udhari.LastUpdatedAt = now
		udhari.LastUpdatedBy = userID
		if err := s.udhariRepo.UpdateUdhariSettlement(ctx, *udhari); err != nil {
			return fmt.Errorf("failed to update udhari: %w", err)
		}

		settlement = domain.UdhariSettlement{
			SettlementID: uuid.NewString(),
			UdhariID:     udhari.UdhariID,
			AmountPaise:  req.AmountPaise,
			PaidOn:       paidOn,
			PaymentMode:  mode,
			Notes:        req.Notes,
			CreatedAt:    now,
			CreatedBy:    userID,
		}
		if err := s.udhariRepo.SaveSettlement(ctx, settlement); err != nil {
			return fmt.Errorf("failed to save settlement: %w", err)
		}

		_, err = s.cashBook.Post(ctx, domain.Posting{
			PaymentMode: mode,
			EntryDate:   paidOn,
			Source:      domain.SourceUdhariSettlement,
			Direction:   udhari.Direction.SettlementDirection(),
			AmountPaise: req.AmountPaise,
			ReferenceID: udhari.UdhariID,
			CustomerID:  &udhari.CustomerID,
			Narration:   fmt.Sprintf("Udhari %s settlement", udhari.CFID),
		}, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to settle udhari", slog.String("udhari_id", udhariID))
		return nil, nil, err
	}

	s.Publish(ctx, domain.EventUdhariSettled, udhari.UdhariID, userID, dto.ToUdhariSettlementResponse(&settlement))
	s.LogInfo(ctx, "Udhari settlement recorded",
		slog.String("udhari_id", udhari.UdhariID),
		slog.Int64("amount_paise", settlement.AmountPaise),
		slog.String("status", string(udhari.Status)))
	return &settlement, udhari, nil
}
