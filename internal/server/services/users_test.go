package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/config"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/passwords"
)

func newUserService(t *testing.T, rm *fakeRepoManager, cfg *config.Config) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	if cfg == nil {
		cfg = testConfig()
	}
	return NewUserService(db, rm, passwords.NewBcryptHasher(bcrypt.MinCost), testLogger(), cfg)
}

func TestRegister_Success(t *testing.T) {
	roleID := int64(2)
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{},
		r: &fakeRolesRepo{out: &models.Role{ID: 2, Name: "teacher"}},
	}
	s := newUserService(t, rm, nil)

	pub, err := s.Register(context.Background(), CreateUserParams{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret",
		RoleID:    &roleID,
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if pub.Email != "ada@example.com" || pub.ID == 0 {
		t.Fatalf("unexpected public user: %+v", pub)
	}
}

func TestRegister_NoRole(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRolesRepo{err: common.ErrorNotFound}}
	s := newUserService(t, rm, nil)

	// nil RoleID must not touch the roles repository
	pub, err := s.Register(context.Background(), CreateUserParams{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "s3cret",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if pub == nil {
		t.Fatal("expected a user")
	}
}

func TestRegister_UnknownRole(t *testing.T) {
	roleID := int64(99)
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRolesRepo{err: common.ErrorNotFound}}
	s := newUserService(t, rm, nil)

	_, err := s.Register(context.Background(), CreateUserParams{
		Email:    "ada@example.com",
		Password: "s3cret",
		RoleID:   &roleID,
	})
	if !errors.Is(err, common.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: common.ErrEmailAlreadyTaken}}
	s := newUserService(t, rm, nil)

	_, err := s.Register(context.Background(), CreateUserParams{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	if !errors.Is(err, common.ErrEmailAlreadyTaken) {
		t.Fatalf("expected ErrEmailAlreadyTaken, got %v", err)
	}
}

func TestRegister_RepositoryError(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: errors.New("db down")}}
	s := newUserService(t, rm, nil)

	_, err := s.Register(context.Background(), CreateUserParams{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}

func TestSeedAdmin_CreatesWhenEmpty(t *testing.T) {
	repo := &fakeUsersRepo{countOut: 0}
	rm := &fakeRepoManager{u: repo}
	cfg := testConfig()
	cfg.AdminEmail = "admin@example.com"
	cfg.AdminPassword = "admin-pass"
	s := newUserService(t, rm, cfg)

	if err := s.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("SeedAdmin error: %v", err)
	}
}

func TestSeedAdmin_SkipsWhenUsersExist(t *testing.T) {
	repo := &fakeUsersRepo{countOut: 3, createErr: errors.New("must not be called")}
	rm := &fakeRepoManager{u: repo}
	cfg := testConfig()
	cfg.AdminEmail = "admin@example.com"
	cfg.AdminPassword = "admin-pass"
	s := newUserService(t, rm, cfg)

	if err := s.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("SeedAdmin error: %v", err)
	}
}

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	repo := &fakeUsersRepo{countErr: errors.New("must not be called")}
	rm := &fakeRepoManager{u: repo}
	s := newUserService(t, rm, testConfig())

	if err := s.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("SeedAdmin error: %v", err)
	}
}

func TestSeedAdmin_ToleratesLostRace(t *testing.T) {
	repo := &fakeUsersRepo{countOut: 0, createErr: common.ErrEmailAlreadyTaken}
	rm := &fakeRepoManager{u: repo}
	cfg := testConfig()
	cfg.AdminEmail = "admin@example.com"
	cfg.AdminPassword = "admin-pass"
	s := newUserService(t, rm, cfg)

	if err := s.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("a concurrently seeded admin must not be an error, got %v", err)
	}
}
