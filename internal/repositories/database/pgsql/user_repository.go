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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, name, password_hash, COALESCE(refresh_token_hash, ''), refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.Name, &u.PasswordHash, &u.RefreshTokenHash, &u.RefreshTokenExpiryTime,
		&u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy, &u.DeletedAt)
	return u, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db(ctx).Exec(ctx, query, user.UserID, user.Username, user.Name, user.PasswordHash,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy)
	return mapError(err, "failed to save user %s", user.Username)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u, err := scanUser(r.db(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 AND deleted_at IS NULL`, userID))
	if err != nil {
		return nil, mapError(err, "failed to find user by ID %s", userID)
	}
	return &u, nil
}

// FindUserByUsername also returns soft-deleted users; callers check DeletedAt.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.db(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, mapError(err, "failed to find user %s", username)
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to query users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan user row")
		}
		users = append(users, u)
	}
	return users, mapError(rows.Err(), "error iterating user rows")
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `UPDATE users SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND deleted_at IS NULL`
	tag, err := r.db(ctx).Exec(ctx, query, user.UserID, user.Name, user.LastUpdatedAt, user.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update user %s", user.UserID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE users SET refresh_token_hash = $2, refresh_token_expiry_time = $3 WHERE user_id = $1 AND deleted_at IS NULL`,
		userID, refreshTokenHash, expiry)
	if err != nil {
		return mapError(err, "failed to store refresh token for user %s", userID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	_, err := r.db(ctx).Exec(ctx,
		`UPDATE users SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL WHERE user_id = $1`, userID)
	return mapError(err, "failed to clear refresh token for user %s", userID)
}

// MarkUserDeleted soft-deletes the user and drops any refresh token.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `UPDATE users
		SET deleted_at = $2, deleted_by = $3, last_updated_at = $2, last_updated_by = $3,
			refresh_token_hash = NULL, refresh_token_expiry_time = NULL
		WHERE user_id = $1 AND deleted_at IS NULL`
	tag, err := r.db(ctx).Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return mapError(err, "failed to delete user %s", userID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
