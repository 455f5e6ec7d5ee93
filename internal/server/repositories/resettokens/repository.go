// Package resettokens declares the repository contract for single-use
// password-reset tokens.
package resettokens

import (
	"context"
	"time"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

// Repository manages the lifecycle of password-reset tokens. Tokens are never
// physically deleted; invalidation and consumption both set the used_at
// timestamp.
type Repository interface {
	// Create inserts a new unused token row and returns it with ID and
	// CreatedAt set.
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (*models.PasswordResetToken, error)

	// InvalidateAllForUser marks every currently-unused token of the user as
	// used, guaranteeing at most one live token per user afterwards.
	InvalidateAllForUser(ctx context.Context, userID int64) error

	// FindUnusedByHash returns the unused token matching the code digest, or
	// common.ErrInvalidResetToken when no such row exists.
	FindUnusedByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)

	// Consume atomically marks the token used. It must be a conditional
	// update (used_at IS NULL) so two concurrent attempts on the same code
	// cannot both succeed; the loser receives common.ErrInvalidResetToken.
	Consume(ctx context.Context, id int64, usedAt time.Time) error
}
