package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, phone, address, id_proof, notes, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.CustomerID, &c.Name, &c.Phone, &c.Address, &c.IDProof, &c.Notes, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	return c, err
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, c domain.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db(ctx).Exec(ctx, query, c.CustomerID, c.Name, c.Phone, c.Address, c.IDProof, c.Notes, c.IsActive,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy)
	return mapError(err, "failed to save customer %s", c.CustomerID)
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	c, err := scanCustomer(r.db(ctx).QueryRow(ctx, query, customerID))
	if err != nil {
		return nil, mapError(err, "failed to find customer %s", customerID)
	}
	return &c, nil
}

// ListCustomers matches Search as a case-insensitive name prefix or a phone prefix.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	var w filter
	if f.Search != "" {
		pattern := strings.ToLower(f.Search) + "%"
		w.add("(lower(name) LIKE ? OR phone LIKE ?)", pattern)
	}
	if f.ActiveOnly {
		w.raw("is_active")
	}
	page, args := pageClause(w.args, f.Limit, f.Offset)
	query := `SELECT ` + customerColumns + ` FROM customers` + w.where() + ` ORDER BY name, customer_id` + page

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list customers")
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan customer row")
		}
		customers = append(customers, c)
	}
	return customers, mapError(rows.Err(), "error iterating customer rows")
}

func (r *PgxCustomerRepository) CountOpenItems(ctx context.Context, customerID string) (int, int, error) {
	query := `SELECT
		(SELECT count(*) FROM loans WHERE customer_id = $1 AND status <> 'CLOSED'),
		(SELECT count(*) FROM udhari WHERE customer_id = $1 AND status <> 'SETTLED')`
	var loans, udhari int
	if err := r.db(ctx).QueryRow(ctx, query, customerID).Scan(&loans, &udhari); err != nil {
		return 0, 0, mapError(err, "failed to count open items for customer %s", customerID)
	}
	return loans, udhari, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	query := `UPDATE customers
		SET name = $2, phone = $3, address = $4, id_proof = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE customer_id = $1`
	tag, err := r.db(ctx).Exec(ctx, query, c.CustomerID, c.Name, c.Phone, c.Address, c.IDProof, c.Notes, c.LastUpdatedAt, c.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update customer %s", c.CustomerID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	query := `UPDATE customers SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3 WHERE customer_id = $1`
	tag, err := r.db(ctx).Exec(ctx, query, customerID, now, userID)
	if err != nil {
		return mapError(err, "failed to deactivate customer %s", customerID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
