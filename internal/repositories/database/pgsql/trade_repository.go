package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTradeRepository struct {
	BaseRepository
}

func newPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeRepositoryFacade {
	return &PgxTradeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)

const tradeColumns = `trade_id, cfid, metal, side, customer_id, trade_date, weight_grams, purity_pct, fine_weight_grams,
	rate_per_gram_paise, making_charges_paise, amount_paise, payment_mode, notes, is_voided, voided_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTrade(row pgx.Row) (domain.Trade, error) {
	var t domain.Trade
	err := row.Scan(&t.TradeID, &t.CFID, &t.Metal, &t.Side, &t.CustomerID, &t.TradeDate, &t.WeightGrams, &t.PurityPct,
		&t.FineWeightGrams, &t.RatePerGramPaise, &t.MakingChargesPaise, &t.AmountPaise, &t.PaymentMode, &t.Notes,
		&t.IsVoided, &t.VoidedAt, &t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy)
	return t, err
}

func (r *PgxTradeRepository) SaveTrade(ctx context.Context, t *domain.Trade) error {
	q := r.db(ctx)
	n, err := nextSequence(ctx, q, "trade_cfid_seq")
	if err != nil {
		return err
	}
	t.CFID = cfid("TR", n)

	query := `INSERT INTO trades (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = q.Exec(ctx, query, t.TradeID, t.CFID, t.Metal, t.Side, t.CustomerID, t.TradeDate, t.WeightGrams, t.PurityPct,
		t.FineWeightGrams, t.RatePerGramPaise, t.MakingChargesPaise, t.AmountPaise, t.PaymentMode, t.Notes,
		t.IsVoided, t.VoidedAt, t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy)
	return mapError(err, "failed to save trade %s", t.TradeID)
}

func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	t, err := scanTrade(r.db(ctx).QueryRow(ctx, `SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1`, tradeID))
	if err != nil {
		return nil, mapError(err, "failed to find trade %s", tradeID)
	}
	return &t, nil
}

func (r *PgxTradeRepository) FindTradeByIDForUpdate(ctx context.Context, tradeID string) (*domain.Trade, error) {
	t, err := scanTrade(r.db(ctx).QueryRow(ctx, `SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1 FOR UPDATE`, tradeID))
	if err != nil {
		return nil, mapError(err, "failed to lock trade %s", tradeID)
	}
	return &t, nil
}

func (r *PgxTradeRepository) ListTrades(ctx context.Context, f domain.TradeFilter) ([]domain.Trade, error) {
	var w filter
	if f.Metal != "" {
		w.add("metal = ?", f.Metal)
	}
	if f.Side != "" {
		w.add("side = ?", f.Side)
	}
	if f.CustomerID != "" {
		w.add("customer_id = ?", f.CustomerID)
	}
	if f.From != nil {
		w.add("trade_date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("trade_date <= ?", *f.To)
	}
	if !f.IncludeVoided {
		w.raw("NOT is_voided")
	}
	page, args := pageClause(w.args, f.Limit, f.Offset)
	query := `SELECT ` + tradeColumns + ` FROM trades` + w.where() + ` ORDER BY trade_date DESC, created_at DESC` + page

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list trades")
	}
	defer rows.Close()

	trades := []domain.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan trade row")
		}
		trades = append(trades, t)
	}
	return trades, mapError(rows.Err(), "error iterating trade rows")
}

func (r *PgxTradeRepository) MarkTradeVoided(ctx context.Context, tradeID string, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE trades SET is_voided = TRUE, voided_at = $2, last_updated_at = $2, last_updated_by = $3 WHERE trade_id = $1`,
		tradeID, now, userID)
	if err != nil {
		return mapError(err, "failed to void trade %s", tradeID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
