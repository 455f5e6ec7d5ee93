package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/logging"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/config"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/passwords"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/repomanager"
)

// CreateUserParams carries the fields accepted when registering a user.
// RoleID is optional; a nil role means a plain account with no permissions.
type CreateUserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleID    *int64
}

// UserService handles user registration and the bootstrap admin account.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      passwords.Hasher
	logger      logging.Logger

	adminEmail    string
	adminPassword string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher passwords.Hasher,
	logger logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		hasher:        hasher,
		logger:        logger,
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
	}
}

// Register creates a user. The referenced role must exist, and the email must
// be unique; violations surface as ErrRoleNotFound and ErrEmailAlreadyTaken.
func (s *UserService) Register(ctx context.Context, params CreateUserParams) (*models.PublicUser, error) {
	if params.RoleID != nil {
		if _, err := s.repomanager.Roles(s.db).FindByID(ctx, *params.RoleID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.logger.Warn(ctx, "registration rejected: unknown role", "role_id", *params.RoleID)
				return nil, common.ErrRoleNotFound
			}
			s.logger.Error(ctx, "error loading role", "error", err)
			return nil, common.ErrorInternal
		}
	}

	hash, salt, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Hash:      hash,
		Salt:      salt,
		RoleID:    params.RoleID,
	}

	created, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyTaken) {
			s.logger.Warn(ctx, "registration rejected: email already taken")
			return nil, common.ErrEmailAlreadyTaken
		}
		s.logger.Error(ctx, "error creating user", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "user_id", created.ID)
	return created.Public(), nil
}

// SeedAdmin creates the configured bootstrap admin when the users table is
// empty. It is a no-op when admin credentials are not configured or when any
// user already exists.
func (s *UserService) SeedAdmin(ctx context.Context) error {
	if s.adminEmail == "" || s.adminPassword == "" {
		s.logger.Debug(ctx, "admin seeding skipped: no credentials configured")
		return nil
	}

	n, err := s.repomanager.Users(s.db).Count(ctx)
	if err != nil {
		s.logger.Error(ctx, "error counting users", "error", err)
		return common.ErrorInternal
	}
	if n > 0 {
		return nil
	}

	_, err = s.Register(ctx, CreateUserParams{
		FirstName: "Admin",
		LastName:  "User",
		Email:     s.adminEmail,
		Password:  s.adminPassword,
	})
	if errors.Is(err, common.ErrEmailAlreadyTaken) {
		// Another instance seeded first.
		return nil
	}
	return err
}
