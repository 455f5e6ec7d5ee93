// Package roles declares the repository contract for role records. Roles are
// read-only in this service; they are only referenced during user creation
// and for enriching token payloads.
package roles

import (
	"context"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

type Repository interface {
	// FindByID returns the role or common.ErrorNotFound.
	FindByID(ctx context.Context, id int64) (*models.Role, error)
}
