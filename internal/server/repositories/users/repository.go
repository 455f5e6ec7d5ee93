// Package users declares the repository contract for user records.
package users

import (
	"context"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

// Repository defines the storage operations the services need for users.
// Lookups return soft-deleted users as-is; the caller decides whether a
// deleted user is acceptable.
type Repository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	// A duplicate email surfaces as common.ErrEmailAlreadyTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail returns the user with the exact email, role not loaded.
	// Absent users surface as common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByEmailWithPermissions returns the user with Role and its
	// permissions eagerly loaded.
	FindByEmailWithPermissions(ctx context.Context, email string) (*models.User, error)

	// UpdatePassword overwrites the stored hash and salt for the user.
	UpdatePassword(ctx context.Context, userID int64, hash, salt string) error

	// Count returns the total number of user rows, deleted ones included.
	Count(ctx context.Context) (int64, error)
}
