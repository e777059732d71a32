package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// CashAccountReader defines read operations for the shop's money accounts
type CashAccountReader interface {
	FindAccountByCode(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error)
	ListAccounts(ctx context.Context) ([]domain.CashAccount, error)
}

// LedgerEntryReader defines read operations for cash-book entries
type LedgerEntryReader interface {
	// ListEntries retrieves entries oldest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error)

	// ListEntriesInRange returns every entry dated within [from, to] across accounts.
	ListEntriesInRange(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error)
}

// CashBookTransactionSupport defines the posting operations. They must run
// inside TransactionManager.RunInTx.
type CashBookTransactionSupport interface {
	// FindAccountByCodeForUpdate selects an account and locks it.
	FindAccountByCodeForUpdate(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error)

	// SaveEntryAndBalance inserts the entry and stores the account's new balance.
	SaveEntryAndBalance(ctx context.Context, entry domain.LedgerEntry, userID string, now time.Time) error
}

// CashBookRepositoryFacade combines all cash-book repository interfaces
type CashBookRepositoryFacade interface {
	CashAccountReader
	LedgerEntryReader
	CashBookTransactionSupport
}
