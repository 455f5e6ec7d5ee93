package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/dbx"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/logging"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/auth"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/config"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/email"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/passwords"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/repomanager"
)

// notifierTimeout bounds the best-effort email send after the reset token is
// committed, so a slow SMTP server cannot stall the request.
const notifierTimeout = 10 * time.Second

// TokenPair bundles the two JWTs issued on a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult is what a successful login returns to the transport layer.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.PublicUser
}

// AuthService implements login, password change and the forgot/reset
// password flow on top of the repositories.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      passwords.Hasher
	notifier    email.Notifier
	logger      logging.Logger

	jwtSecret           []byte
	jwtRefreshSecret    []byte
	accessTokenTTL      time.Duration
	refreshTokenTTL     time.Duration
	resetExpiresMinutes int

	// now is a seam so tests can pin the clock for expiry checks.
	now func() time.Time
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher passwords.Hasher,
	notifier email.Notifier, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                  db,
		repomanager:         m,
		hasher:              hasher,
		notifier:            notifier,
		logger:              logger,
		jwtSecret:           []byte(cfg.JWTSecret),
		jwtRefreshSecret:    []byte(cfg.JWTRefreshSecret),
		accessTokenTTL:      cfg.AccessTokenValidityDuration,
		refreshTokenTTL:     cfg.RefreshTokenValidityDuration,
		resetExpiresMinutes: cfg.PasswordResetExpiresMinutes,
		now:                 time.Now,
	}
}

// verifyCredentials loads the user with role and permissions and checks the
// password. Every failure mode collapses into ErrInvalidCredentials so a
// caller cannot distinguish an unknown email from a wrong password.
func (s *AuthService) verifyCredentials(ctx context.Context, emailAddr, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmailWithPermissions(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "login rejected: unknown email")
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "error loading user", "error", err)
		return nil, common.ErrorInternal
	}

	if !user.IsActive() {
		s.logger.Warn(ctx, "login rejected: user deleted", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(password, user.Hash)
	if err != nil {
		// Engine failure (corrupt digest etc.), not a wrong password. Still
		// reported to the caller as invalid credentials.
		s.logger.Error(ctx, "password verification failed", "user_id", user.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		s.logger.Warn(ctx, "login rejected: wrong password", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates by email and password and returns a fresh token pair
// plus the public projection of the user.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	user, err := s.verifyCredentials(ctx, emailAddr, password)
	if err != nil {
		return nil, err
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		s.logger.Error(ctx, "error signing tokens", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "login successful", "user_id", user.ID)
	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
	}, nil
}

// generateTokenPair signs the access and refresh tokens concurrently. The
// two tokens share no state, so the signings are independent.
func (s *AuthService) generateTokenPair(ctx context.Context, user *models.User) (*TokenPair, error) {
	var pair TokenPair

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pair.AccessToken, err = auth.GenerateAccessToken(user, s.jwtSecret, s.accessTokenTTL)
		return err
	})
	g.Go(func() error {
		var err error
		pair.RefreshToken, err = auth.GenerateRefreshToken(user.ID, s.jwtRefreshSecret, s.refreshTokenTTL)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &pair, nil
}

// ChangePassword re-verifies the current password before storing the new
// one. Previously issued tokens stay valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, emailAddr, oldPassword, newPassword string) error {
	user, err := s.verifyCredentials(ctx, emailAddr, oldPassword)
	if err != nil {
		return err
	}

	hash, salt, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return common.ErrorInternal
	}

	if err := s.repomanager.Users(s.db).UpdatePassword(ctx, user.ID, hash, salt); err != nil {
		s.logger.Error(ctx, "error updating password", "user_id", user.ID, "error", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "password changed", "user_id", user.ID)
	return nil
}

// ForgotPassword issues a single-use reset code for the account and emails
// it. It always reports success for unknown or deleted accounts so the
// endpoint cannot be used to probe which emails are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.repomanager.Users(s.db).FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "password reset requested for unknown email")
			return nil
		}
		s.logger.Error(ctx, "error loading user", "error", err)
		return common.ErrorInternal
	}
	if !user.IsActive() {
		s.logger.Warn(ctx, "password reset requested for deleted user", "user_id", user.ID)
		return nil
	}

	code, err := auth.GenerateResetCode()
	if err != nil {
		s.logger.Error(ctx, "error generating reset code", "error", err)
		return common.ErrorInternal
	}

	codeHash := auth.HashResetCode(code)
	expiresAt := s.now().Add(time.Duration(s.resetExpiresMinutes) * time.Minute)

	// Invalidation and insertion commit together: at no point can two live
	// codes exist for the same user.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.repomanager.ResetTokens(tx)
		if err := tokens.InvalidateAllForUser(ctx, user.ID); err != nil {
			return err
		}
		_, err := tokens.Create(ctx, user.ID, codeHash, expiresAt)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "error storing reset token", "user_id", user.ID, "error", err)
		return common.ErrorInternal
	}

	s.deliverResetCode(ctx, user, code)
	return nil
}

// deliverResetCode sends the email after the token is committed. Delivery is
// best effort; a failure is logged and never surfaces to the caller, who has
// already received the generic acknowledgement.
func (s *AuthService) deliverResetCode(ctx context.Context, user *models.User, code string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifierTimeout)
	defer cancel()

	data := email.ResetEmailData{
		DisplayName:    user.FirstName,
		Code:           code,
		ExpiresMinutes: s.resetExpiresMinutes,
	}
	if err := s.notifier.SendPasswordResetEmail(sendCtx, user.Email, data); err != nil {
		s.logger.Error(ctx, "error sending password reset email", "user_id", user.ID, "error", err)
		return
	}
	s.logger.Info(ctx, "password reset email sent", "user_id", user.ID)
}

// ResetPassword consumes a reset code and overwrites the account password.
// Consumption is a conditional update, so two concurrent attempts on the
// same code cannot both succeed.
func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	codeHash := auth.HashResetCode(code)

	token, err := s.repomanager.ResetTokens(s.db).FindUnusedByHash(ctx, codeHash)
	if err != nil {
		if errors.Is(err, common.ErrInvalidResetToken) {
			s.logger.Warn(ctx, "password reset rejected: unknown or used code")
			return common.ErrInvalidResetToken
		}
		s.logger.Error(ctx, "error loading reset token", "error", err)
		return common.ErrorInternal
	}

	if token.Expired(s.now()) {
		s.logger.Warn(ctx, "password reset rejected: expired code", "user_id", token.UserID)
		return common.ErrResetTokenExpired
	}

	hash, salt, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.ResetTokens(tx).Consume(ctx, token.ID, s.now()); err != nil {
			return err
		}
		return s.repomanager.Users(tx).UpdatePassword(ctx, token.UserID, hash, salt)
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidResetToken) {
			// Lost the race against a concurrent reset with the same code.
			s.logger.Warn(ctx, "password reset rejected: code already consumed", "user_id", token.UserID)
			return common.ErrInvalidResetToken
		}
		s.logger.Error(ctx, "error consuming reset token", "user_id", token.UserID, "error", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "password reset completed", "user_id", token.UserID)
	return nil
}
