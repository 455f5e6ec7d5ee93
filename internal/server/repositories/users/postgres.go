// Package users provides a PostgreSQL-backed repository for user records.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

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

// Create inserts the user. The unique constraint on email is translated into
// common.ErrEmailAlreadyTaken so the caller can surface it as a client error.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, hash, salt, role_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Hash, user.Salt, user.RoleID).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrEmailAlreadyTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// FindByEmail returns the user row matching the exact email, including the
// soft-delete timestamp. The role association is not loaded.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, hash, salt, role_id, deleted_at, created_at
		FROM users
		WHERE email = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.Hash, &user.Salt, &user.RoleID, &user.DeletedAt, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// FindByEmailWithPermissions loads the user and, when a role is assigned,
// the role with its permission set.
func (r *PostgresRepository) FindByEmailWithPermissions(ctx context.Context, email string) (*models.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.RoleID == nil {
		return user, nil
	}

	role, err := r.loadRole(ctx, *user.RoleID)
	if err != nil {
		return nil, err
	}
	user.Role = role

	return user, nil
}

func (r *PostgresRepository) loadRole(ctx context.Context, roleID int64) (*models.Role, error) {
	query := `
		SELECT r.id, r.name, p.id, p.name
		FROM roles r
		LEFT JOIN role_permissions rp ON rp.role_id = r.id
		LEFT JOIN permissions p ON p.id = rp.permission_id
		WHERE r.id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var role *models.Role
	for rows.Next() {
		var (
			id       int64
			name     string
			permID   sql.NullInt64
			permName sql.NullString
		)
		if err := rows.Scan(&id, &name, &permID, &permName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if role == nil {
			role = &models.Role{ID: id, Name: name}
		}
		if permID.Valid {
			role.Permissions = append(role.Permissions, models.Permission{ID: permID.Int64, Name: permName.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if role == nil {
		return nil, common.ErrorNotFound
	}

	return role, nil
}

// UpdatePassword overwrites the hash and salt columns for the user.
func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID int64, hash, salt string) error {
	query := `
		UPDATE users SET hash = $2, salt = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID, hash, salt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Count returns the total number of user rows.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
