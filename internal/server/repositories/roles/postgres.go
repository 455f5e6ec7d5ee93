package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/dbx"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `
		SELECT id, name FROM roles
		WHERE id = $1
	`
	role := &models.Role{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return role, nil
}
