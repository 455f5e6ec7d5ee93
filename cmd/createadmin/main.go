// Command createadmin registers an administrator account directly against
// the database. Useful when the automatic seeding was skipped or a second
// admin is needed.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/logging"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/config"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/passwords"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/repomanager"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/services"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	email, password, err := promptCredentials(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		log.Fatalf("input error: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	rm := repomanager.NewPostgresRepositoryManager()
	us := services.NewUserService(db, rm, passwords.NewBcryptHasher(cfg.BcryptCost), logger, cfg)

	pub, err := us.Register(context.Background(), services.CreateUserParams{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		log.Fatalf("create error: %v", err)
	}

	fmt.Printf("created admin %s (id %d)\n", pub.Email, pub.ID)
}

func promptCredentials(reader *bufio.Reader, w io.Writer) (string, string, error) {
	fmt.Fprint(w, "Admin email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", "", fmt.Errorf("email must not be empty")
	}

	fmt.Fprint(w, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", "", err
	}
	if len(password) == 0 {
		return "", "", fmt.Errorf("password must not be empty")
	}

	return email, string(password), nil
}
