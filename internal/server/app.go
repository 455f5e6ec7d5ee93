// Package server initializes and runs the user management backend. It opens
// the database, runs migrations, seeds the bootstrap admin and serves the
// HTTP API until the process receives a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/logging"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/config"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/email"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/httpapi"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/passwords"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/repomanager"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	authService *services.AuthService
	userService *services.UserService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	notifier, err := email.NewSMTPNotifier(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		UseSSL:   cfg.SMTPSecure,
		From:     cfg.MailFrom,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("smtp init error: %w", err)
	}

	hasher := passwords.NewBcryptHasher(cfg.BcryptCost)
	as := services.NewAuthService(db, rm, hasher, notifier, logger, cfg)
	us := services.NewUserService(db, rm, hasher, logger, cfg)

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		repomanager: rm,
		authService: as,
		userService: us,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) prepareDatabase(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}
	if err := app.userService.SeedAdmin(ctx); err != nil {
		return fmt.Errorf("admin seeding error: %w", err)
	}
	return nil
}

// Run blocks until the context is canceled or the listener fails, then
// drains in-flight requests before returning.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)
	defer app.db.Close()

	if err := app.prepareDatabase(ctx); err != nil {
		return err
	}

	handler := httpapi.NewRouter(
		httpapi.NewHandler(app.authService, app.userService, app.logger),
		[]byte(app.config.JWTSecret),
	)
	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
