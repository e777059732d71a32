package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
)

// CashBookPoster records money movements. Post must be called with a ctx
// obtained from TransactionManager.RunInTx so the entry commits with the
// operation that caused it.
type CashBookPoster interface {
	Post(ctx context.Context, posting domain.Posting, userID string) (*domain.LedgerEntry, error)
}

// CashBookReaderSvc defines read operations for the cash book
type CashBookReaderSvc interface {
	ListAccounts(ctx context.Context) ([]domain.CashAccount, error)
	GetAccount(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error)
	ListEntries(ctx context.Context, code domain.AccountCode, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error)
}

// CashBookWriterSvc defines manual postings
type CashBookWriterSvc interface {
	// AdjustAccount posts an opening balance or correction in its own transaction.
	AdjustAccount(ctx context.Context, code domain.AccountCode, req dto.AdjustAccountRequest, userID string) (*domain.LedgerEntry, error)
}

// CashBookSvcFacade combines all cash-book service interfaces
type CashBookSvcFacade interface {
	CashBookPoster
	CashBookReaderSvc
	CashBookWriterSvc
}
