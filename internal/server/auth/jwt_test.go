package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

func testUser() *models.User {
	roleID := int64(1)
	return &models.User{
		ID:        42,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		RoleID:    &roleID,
		Role: &models.Role{
			ID:   roleID,
			Name: "admin",
			Permissions: []models.Permission{
				{ID: 1, Name: "users.read"},
				{ID: 2, Name: "users.write"},
			},
		},
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	secret := []byte("access-secret")

	token, err := GenerateAccessToken(testUser(), secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := ParseAccessToken(token, secret)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("want subject 42, got %q", claims.Subject)
	}
	if claims.Email != "ada@x.com" {
		t.Fatalf("want email, got %q", claims.Email)
	}
	if len(claims.Permissions) != 2 {
		t.Fatalf("want 2 permissions, got %v", claims.Permissions)
	}
}

func TestAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testUser(), []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = ParseAccessToken(token, []byte("wrong"))
	if !errors.Is(err, common.ErrInvalidAccessToken) {
		t.Fatalf("want ErrInvalidAccessToken, got %v", err)
	}
}

func TestAccessToken_Expired(t *testing.T) {
	secret := []byte("s")
	token, err := GenerateAccessToken(testUser(), secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = ParseAccessToken(token, secret)
	if !errors.Is(err, common.ErrInvalidAccessToken) {
		t.Fatalf("want ErrInvalidAccessToken for expired token, got %v", err)
	}
}

func TestRefreshToken_SubjectOnly(t *testing.T) {
	token, err := GenerateRefreshToken(42, []byte("refresh-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}
	if token == "" {
		t.Fatal("empty refresh token")
	}
}

func TestAccessAndRefresh_IndependentSecrets(t *testing.T) {
	access, err := GenerateAccessToken(testUser(), []byte("access"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	// A refresh secret must not validate an access token.
	if _, err := ParseAccessToken(access, []byte("refresh")); err == nil {
		t.Fatal("access token validated with refresh secret")
	}
}
