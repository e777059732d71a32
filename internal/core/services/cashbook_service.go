package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type cashBookService struct {
	BaseService
	repo      portsrepo.CashBookRepositoryFacade
	txManager portsrepo.TransactionManager
}

// NewCashBookService creates the cash-book service.
func NewCashBookService(repo portsrepo.CashBookRepositoryFacade, txManager portsrepo.TransactionManager, opts ...BaseOption) portssvc.CashBookSvcFacade {
	svc := &cashBookService{repo: repo, txManager: txManager}
	svc.apply(opts)
	return svc
}

var _ portssvc.CashBookSvcFacade = (*cashBookService)(nil)

// Post locks the target account, stamps the entry with the new running
// balance and stores both. Balances may go negative: the book records what
// happened and does not refuse a payment the shop has already made.
func (s *cashBookService) Post(ctx context.Context, p domain.Posting, userID string) (*domain.LedgerEntry, error) {
	if p.AmountPaise <= 0 {
		return nil, domain.ErrAmountInvalid
	}
	if p.Direction != domain.DirectionIn && p.Direction != domain.DirectionOut {
		return nil, fmt.Errorf("%w: unknown entry direction %q", apperrors.ErrValidation, p.Direction)
	}
	mode := p.PaymentMode.OrDefault()
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrPaymentModeInvalid, mode)
	}
	code := p.AccountCode
	if code == "" {
		code = mode.AccountCode()
	}

	account, err := s.repo.FindAccountByCodeForUpdate(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock cash account", slog.String("account", string(code)))
		return nil, fmt.Errorf("failed to lock account %s: %w", code, err)
	}

	now := s.Now()
	entry := domain.LedgerEntry{
		EntryID:             uuid.NewString(),
		AccountCode:         code,
		EntryDate:           domain.DateOnly(p.EntryDate),
		Source:              p.Source,
		Direction:           p.Direction,
		AmountPaise:         p.AmountPaise,
		RunningBalancePaise: account.BalancePaise + accounting.SignedAmount(p.Direction, p.AmountPaise),
		ReferenceID:         p.ReferenceID,
		CustomerID:          p.CustomerID,
		Narration:           p.Narration,
		CreatedAt:           now,
		CreatedBy:           userID,
	}
	if err := s.repo.SaveEntryAndBalance(ctx, entry, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to save cash-book entry", slog.String("account", string(code)), slog.String("reference_id", p.ReferenceID))
		return nil, fmt.Errorf("failed to post cash-book entry: %w", err)
	}

	s.LogDebug(ctx, "Cash-book entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("account", string(code)),
		slog.String("source", string(p.Source)),
		slog.Int64("amount_paise", p.AmountPaise))
	return &entry, nil
}

func (s *cashBookService) ListAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *cashBookService) GetAccount(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error) {
	if !code.Valid() {
		return nil, fmt.Errorf("%w: unknown account %q", apperrors.ErrNotFound, code)
	}
	account, err := s.repo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", code, err)
	}
	return account, nil
}

func (s *cashBookService) ListEntries(ctx context.Context, code domain.AccountCode, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	if !code.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown account %q", apperrors.ErrNotFound, code)
	}
	from, err := dto.ParseOptionalDate(params.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := dto.ParseOptionalDate(params.To)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, domain.ErrDateRangeInvalid
	}

	entries, next, err := s.repo.ListEntries(ctx, domain.LedgerFilter{
		AccountCode: code,
		From:        from,
		To:          to,
		Limit:       params.Limit,
		NextToken:   params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash-book entries", slog.String("account", string(code)))
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, next, nil
}

func (s *cashBookService) AdjustAccount(ctx context.Context, code domain.AccountCode, req dto.AdjustAccountRequest, userID string) (*domain.LedgerEntry, error) {
	if !code.Valid() {
		return nil, fmt.Errorf("%w: unknown account %q", apperrors.ErrNotFound, code)
	}
	entryDate, err := dto.ParseDate(req.EntryDate)
	if err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var postErr error
		entry, postErr = s.Post(ctx, domain.Posting{
			AccountCode: code,
			EntryDate:   entryDate,
			Source:      domain.SourceAdjustment,
			Direction:   req.Direction,
			AmountPaise: req.AmountPaise,
			ReferenceID: uuid.NewString(),
			Narration:   req.Narration,
		}, userID)
		return postErr
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cash account adjusted",
		slog.String("account", string(code)),
		slog.String("direction", string(req.Direction)),
		slog.Int64("amount_paise", req.AmountPaise))
	return entry, nil
}
