// Package auth implements the signed-token primitives of the service: JWT
// access/refresh tokens and the short one-time password-reset codes.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
)

// AccessClaims is the access-token payload: subject (user id), email, role id
// and the flattened permission names of the role.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email       string   `json:"email"`
	RoleID      *int64   `json:"role,omitempty"`
	Permissions []string `json:"permissions"`
}

// RefreshClaims carries the subject only.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 access token for the user with the given
// secret and validity duration.
func GenerateAccessToken(user *models.User, secret []byte, validity time.Duration) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email:       user.Email,
		RoleID:      user.RoleID,
		Permissions: user.PermissionNames(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// GenerateRefreshToken signs an HS256 refresh token holding the subject only.
// Refresh tokens are signed with their own secret, independent of the access
// token secret.
func GenerateRefreshToken(userID int64, secret []byte, validity time.Duration) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken validates the token signature and expiry and returns its
// claims. Any failure surfaces as common.ErrInvalidAccessToken.
func ParseAccessToken(tokenString string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, common.ErrInvalidAccessToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidAccessToken
	}

	return claims, nil
}
