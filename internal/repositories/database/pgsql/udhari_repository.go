package pgsql

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUdhariRepository struct {
	BaseRepository
}

func newPgxUdhariRepository(pool *pgxpool.Pool) portsrepo.UdhariRepositoryFacade {
	return &PgxUdhariRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UdhariRepositoryFacade = (*PgxUdhariRepository)(nil)

const udhariColumns = `udhari_id, cfid, customer_id, direction, amount_paise, settled_paise, status, issued_on, due_on,
	payment_mode, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanUdhari(row pgx.Row) (domain.Udhari, error) {
	var u domain.Udhari
	err := row.Scan(&u.UdhariID, &u.CFID, &u.CustomerID, &u.Direction, &u.AmountPaise, &u.SettledPaise, &u.Status,
		&u.IssuedOn, &u.DueOn, &u.PaymentMode, &u.Notes, &u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy)
	return u, err
}

func (r *PgxUdhariRepository) SaveUdhari(ctx context.Context, u *domain.Udhari) error {
	q := r.db(ctx)
	n, err := nextSequence(ctx, q, "udhari_cfid_seq")
	if err != nil {
		return err
	}
	u.CFID = cfid("UD", n)

	query := `INSERT INTO udhari (` + udhariColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = q.Exec(ctx, query, u.UdhariID, u.CFID, u.CustomerID, u.Direction, u.AmountPaise, u.SettledPaise, u.Status,
		u.IssuedOn, u.DueOn, u.PaymentMode, u.Notes, u.CreatedAt, u.CreatedBy, u.LastUpdatedAt, u.LastUpdatedBy)
	return mapError(err, "failed to save udhari %s", u.UdhariID)
}

func (r *PgxUdhariRepository) FindUdhariByID(ctx context.Context, udhariID string) (*domain.Udhari, error) {
	u, err := scanUdhari(r.db(ctx).QueryRow(ctx, `SELECT `+udhariColumns+` FROM udhari WHERE udhari_id = $1`, udhariID))
	if err != nil {
		return nil, mapError(err, "failed to find udhari %s", udhariID)
	}
	return &u, nil
}

func (r *PgxUdhariRepository) FindUdhariByIDForUpdate(ctx context.Context, udhariID string) (*domain.Udhari, error) {
	u, err := scanUdhari(r.db(ctx).QueryRow(ctx, `SELECT `+udhariColumns+` FROM udhari WHERE udhari_id = $1 FOR UPDATE`, udhariID))
	if err != nil {
		return nil, mapError(err, "failed to lock udhari %s", udhariID)
	}
	return &u, nil
}

// ListUdhari orders by issue date, newest first. OverdueAsOf keeps unsettled
// IOUs whose due date is before that day.
func (r *PgxUdhariRepository) ListUdhari(ctx context.Context, f domain.UdhariFilter) ([]domain.Udhari, error) {
	var w filter
	if f.Direction != "" {
		w.add("direction = ?", f.Direction)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.CustomerID != "" {
		w.add("customer_id = ?", f.CustomerID)
	}
	if f.OpenOnly {
		w.raw("status <> 'SETTLED'")
	}
	if f.OverdueAsOf != nil {
		w.add("(status <> 'SETTLED' AND due_on < ?)", *f.OverdueAsOf)
	}
	page, args := pageClause(w.args, f.Limit, f.Offset)
	query := `SELECT ` + udhariColumns + ` FROM udhari` + w.where() + ` ORDER BY issued_on DESC, created_at DESC` + page

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list udhari")
	}
	defer rows.Close()

	list := []domain.Udhari{}
	for rows.Next() {
		u, err := scanUdhari(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan udhari row")
		}
		list = append(list, u)
	}
	return list, mapError(rows.Err(), "error iterating udhari rows")
}

func (r *PgxUdhariRepository) UpdateUdhariSettlement(ctx context.Context, u domain.Udhari) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE udhari SET settled_paise = $2, status = $3, last_updated_at = $4, last_updated_by = $5 WHERE udhari_id = $1`,
		u.UdhariID, u.SettledPaise, u.Status, u.LastUpdatedAt, u.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update udhari %s", u.UdhariID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUdhariRepository) SaveSettlement(ctx context.Context, s domain.UdhariSettlement) error {
	query := `INSERT INTO udhari_settlements (settlement_id, udhari_id, amount_paise, paid_on, payment_mode, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db(ctx).Exec(ctx, query, s.SettlementID, s.UdhariID, s.AmountPaise, s.PaidOn, s.PaymentMode, s.Notes, s.CreatedAt, s.CreatedBy)
	return mapError(err, "failed to save settlement %s", s.SettlementID)
}

func (r *PgxUdhariRepository) ListSettlements(ctx context.Context, udhariID string) ([]domain.UdhariSettlement, error) {
	query := `SELECT settlement_id, udhari_id, amount_paise, paid_on, payment_mode, notes, created_at, created_by
		FROM udhari_settlements WHERE udhari_id = $1 ORDER BY paid_on, created_at`
	rows, err := r.db(ctx).Query(ctx, query, udhariID)
	if err != nil {
		return nil, mapError(err, "failed to list settlements of udhari %s", udhariID)
	}
	defer rows.Close()

	settlements := []domain.UdhariSettlement{}
	for rows.Next() {
		var s domain.UdhariSettlement
		if err := rows.Scan(&s.SettlementID, &s.UdhariID, &s.AmountPaise, &s.PaidOn, &s.PaymentMode, &s.Notes, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, mapError(err, "failed to scan settlement row")
		}
		settlements = append(settlements, s)
	}
	return settlements, mapError(rows.Err(), "error iterating settlement rows")
}
