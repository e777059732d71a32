package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultEntryPageSize = 50

type PgxCashBookRepository struct {
	BaseRepository
}

func newPgxCashBookRepository(pool *pgxpool.Pool) portsrepo.CashBookRepositoryFacade {
	return &PgxCashBookRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CashBookRepositoryFacade = (*PgxCashBookRepository)(nil)

const accountColumns = `code, name, balance_paise, created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `entry_id, account_code, entry_date, source, direction, amount_paise, running_balance_paise,
	reference_id, customer_id, narration, created_at, created_by`

func scanAccount(row pgx.Row) (domain.CashAccount, error) {
	var a domain.CashAccount
	err := row.Scan(&a.Code, &a.Name, &a.BalancePaise, &a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy)
	return a, err
}

func scanEntry(row pgx.Row) (domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(&e.EntryID, &e.AccountCode, &e.EntryDate, &e.Source, &e.Direction, &e.AmountPaise, &e.RunningBalancePaise,
		&e.ReferenceID, &e.CustomerID, &e.Narration, &e.CreatedAt, &e.CreatedBy)
	return e, err
}

func (r *PgxCashBookRepository) FindAccountByCode(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error) {
	a, err := scanAccount(r.db(ctx).QueryRow(ctx, `SELECT `+accountColumns+` FROM cash_accounts WHERE code = $1`, code))
	if err != nil {
		return nil, mapError(err, "failed to find account %s", code)
	}
	return &a, nil
}

func (r *PgxCashBookRepository) FindAccountByCodeForUpdate(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error) {
	a, err := scanAccount(r.db(ctx).QueryRow(ctx, `SELECT `+accountColumns+` FROM cash_accounts WHERE code = $1 FOR UPDATE`, code))
	if err != nil {
		return nil, mapError(err, "failed to lock account %s", code)
	}
	return &a, nil
}

func (r *PgxCashBookRepository) ListAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+accountColumns+` FROM cash_accounts ORDER BY code`)
	if err != nil {
		return nil, mapError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := []domain.CashAccount{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account row")
		}
		accounts = append(accounts, a)
	}
	return accounts, mapError(rows.Err(), "error iterating account rows")
}

// SaveEntryAndBalance writes the entry and moves the account balance to the
// entry's running balance. Both statements share one batch round trip.
func (r *PgxCashBookRepository) SaveEntryAndBalance(ctx context.Context, e domain.LedgerEntry, userID string, now time.Time) error {
	batch := &pgx.Batch{}
	batch.Queue(`INSERT INTO ledger_entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.EntryID, e.AccountCode, e.EntryDate, e.Source, e.Direction, e.AmountPaise, e.RunningBalancePaise,
		e.ReferenceID, e.CustomerID, e.Narration, e.CreatedAt, e.CreatedBy)
	batch.Queue(`UPDATE cash_accounts SET balance_paise = $2, last_updated_at = $3, last_updated_by = $4 WHERE code = $1`,
		e.AccountCode, e.RunningBalancePaise, now, userID)

	br := r.db(ctx).SendBatch(ctx, batch)
	defer br.Close()

	if _, err := br.Exec(); err != nil {
		return mapError(err, "failed to insert ledger entry %s", e.EntryID)
	}
	tag, err := br.Exec()
	if err != nil {
		return mapError(err, "failed to update balance of account %s", e.AccountCode)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, e.AccountCode)
	}
	return nil
}

// ListEntries pages through one account's entries oldest first. The token
// holds the (entry_date, created_at, entry_id) of the last row returned.
func (r *PgxCashBookRepository) ListEntries(ctx context.Context, f domain.LedgerFilter) ([]domain.LedgerEntry, *string, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}

	var w filter
	w.add("account_code = ?", f.AccountCode)
	if f.From != nil {
		w.add("entry_date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("entry_date <= ?", *f.To)
	}
	if f.NextToken != nil && *f.NextToken != "" {
		cursor, err := pagination.DecodeToken(*f.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		w.args = append(w.args, cursor.EntryDate, cursor.CreatedAt, cursor.ID)
		n := len(w.args)
		w.raw(fmt.Sprintf("(entry_date, created_at, entry_id) > ($%d, $%d, $%d)", n-2, n-1, n))
	}

	// Fetch one extra row to learn whether another page exists.
	w.args = append(w.args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM ledger_entries%s ORDER BY entry_date, created_at, entry_id LIMIT $%d`,
		entryColumns, w.where(), len(w.args))

	rows, err := r.db(ctx).Query(ctx, query, w.args...)
	if err != nil {
		return nil, nil, mapError(err, "failed to list entries of account %s", f.AccountCode)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, nil, mapError(err, "failed to scan ledger entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapError(err, "error iterating ledger entries")
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, ID: last.EntryID})
		next = &token
	}
	return entries, next, nil
}

func (r *PgxCashBookRepository) ListEntriesInRange(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries
		WHERE entry_date BETWEEN $1 AND $2
		ORDER BY entry_date, created_at, entry_id`
	rows, err := r.db(ctx).Query(ctx, query, from, to)
	if err != nil {
		return nil, mapError(err, "failed to list entries in range")
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan ledger entry")
		}
		entries = append(entries, e)
	}
	return entries, mapError(rows.Err(), "error iterating ledger entries")
}
