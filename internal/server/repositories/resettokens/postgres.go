// Package resettokens provides a PostgreSQL-backed repository for single-use
// password-reset tokens.
package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/dbx"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new unused token row.
func (r *PostgresRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (*models.PasswordResetToken, error) {
	query := `
		INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	token := &models.PasswordResetToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}
	err := r.db.QueryRowContext(ctx, query, userID, tokenHash, expiresAt).
		Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

// InvalidateAllForUser marks all unused tokens of the user as used.
func (r *PostgresRepository) InvalidateAllForUser(ctx context.Context, userID int64) error {
	query := `
		UPDATE password_reset_tokens SET used_at = now()
		WHERE user_id = $1 AND used_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindUnusedByHash returns the unused token row matching the code digest.
func (r *PostgresRepository) FindUnusedByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1 AND used_at IS NULL
	`
	token := &models.PasswordResetToken{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

// Consume marks the token used only if it is still unused, reporting
// common.ErrInvalidResetToken when another request already spent it.
// The affected-row check is what makes the double-spend race safe.
func (r *PostgresRepository) Consume(ctx context.Context, id int64, usedAt time.Time) error {
	query := `
		UPDATE password_reset_tokens SET used_at = $2
		WHERE id = $1 AND used_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, usedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrInvalidResetToken
	}
	return nil
}
