package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMetalRateRepository struct {
	BaseRepository
}

func newPgxMetalRateRepository(pool *pgxpool.Pool) portsrepo.MetalRateRepositoryFacade {
	return &PgxMetalRateRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.MetalRateRepositoryFacade = (*PgxMetalRateRepository)(nil)

const rateColumns = `rate_id, metal, rate_date, rate_per_gram_paise, created_at, created_by, last_updated_at, last_updated_by`

func scanRate(row pgx.Row) (domain.MetalRate, error) {
	var m domain.MetalRate
	err := row.Scan(&m.RateID, &m.Metal, &m.RateDate, &m.RatePerGramPaise, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// UpsertRate keeps the original rate_id and creation stamp when the day
// already has a rate.
func (r *PgxMetalRateRepository) UpsertRate(ctx context.Context, rate domain.MetalRate) (*domain.MetalRate, error) {
	query := `INSERT INTO metal_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (metal, rate_date) DO UPDATE SET
			rate_per_gram_paise = EXCLUDED.rate_per_gram_paise,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + rateColumns
	saved, err := scanRate(r.db(ctx).QueryRow(ctx, query, rate.RateID, rate.Metal, rate.RateDate, rate.RatePerGramPaise,
		rate.CreatedAt, rate.CreatedBy, rate.LastUpdatedAt, rate.LastUpdatedBy))
	if err != nil {
		return nil, mapError(err, "failed to upsert %s rate", rate.Metal)
	}
	return &saved, nil
}

func (r *PgxMetalRateRepository) FindLatestRate(ctx context.Context, metal domain.Metal, asOf time.Time) (*domain.MetalRate, error) {
	query := `SELECT ` + rateColumns + ` FROM metal_rates
		WHERE metal = $1 AND rate_date <= $2
		ORDER BY rate_date DESC
		LIMIT 1`
	m, err := scanRate(r.db(ctx).QueryRow(ctx, query, metal, asOf))
	if err != nil {
		return nil, mapError(err, "failed to find %s rate as of %s", metal, asOf.Format(time.DateOnly))
	}
	return &m, nil
}

func (r *PgxMetalRateRepository) ListRates(ctx context.Context, metal domain.Metal, from, to time.Time) ([]domain.MetalRate, error) {
	query := `SELECT ` + rateColumns + ` FROM metal_rates
		WHERE metal = $1 AND rate_date BETWEEN $2 AND $3
		ORDER BY rate_date DESC`
	rows, err := r.db(ctx).Query(ctx, query, metal, from, to)
	if err != nil {
		return nil, mapError(err, "failed to list %s rates", metal)
	}
	defer rows.Close()

	rates := []domain.MetalRate{}
	for rows.Next() {
		m, err := scanRate(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan rate row")
		}
		rates = append(rates, m)
	}
	return rates, mapError(rows.Err(), "error iterating rate rows")
}
