package pgsql

import (
	"context"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxShopRepository reads and writes the single row of shop_settings.
type PgxShopRepository struct {
	BaseRepository
}

func newPgxShopRepository(pool *pgxpool.Pool) portsrepo.ShopRepositoryFacade {
	return &PgxShopRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ShopRepositoryFacade = (*PgxShopRepository)(nil)

func (r *PgxShopRepository) GetSettings(ctx context.Context) (*domain.ShopSettings, error) {
	var s domain.ShopSettings
	query := `SELECT shop_name, address, phone, default_cash_loan_rate_pct, default_gold_loan_rate_pct,
			default_silver_loan_rate_pct, max_loan_to_value_pct, last_updated_at, last_updated_by
		FROM shop_settings WHERE id = 1`
	err := r.db(ctx).QueryRow(ctx, query).Scan(&s.ShopName, &s.Address, &s.Phone, &s.DefaultCashLoanRatePct,
		&s.DefaultGoldLoanRatePct, &s.DefaultSilverLoanRatePct, &s.MaxLoanToValuePct, &s.LastUpdatedAt, &s.LastUpdatedBy)
	if err != nil {
		return nil, mapError(err, "failed to get shop settings")
	}
	return &s, nil
}

func (r *PgxShopRepository) UpdateSettings(ctx context.Context, s domain.ShopSettings) error {
	query := `UPDATE shop_settings SET shop_name = $1, address = $2, phone = $3, default_cash_loan_rate_pct = $4,
			default_gold_loan_rate_pct = $5, default_silver_loan_rate_pct = $6, max_loan_to_value_pct = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE id = 1`
	tag, err := r.db(ctx).Exec(ctx, query, s.ShopName, s.Address, s.Phone, s.DefaultCashLoanRatePct, s.DefaultGoldLoanRatePct,
		s.DefaultSilverLoanRatePct, s.MaxLoanToValuePct, s.LastUpdatedAt, s.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update shop settings")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
