// Package httpapi exposes the authentication and user operations over a
// JSON REST interface.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/logging"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/models"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/services"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, code, newPassword string) error
}

// UserService is the slice of the user service the handlers need.
type UserService interface {
	Register(ctx context.Context, params services.CreateUserParams) (*models.PublicUser, error)
}

type Handler struct {
	auth   AuthService
	users  UserService
	logger logging.Logger
}

func NewHandler(auth AuthService, users UserService, logger logging.Logger) *Handler {
	return &Handler{auth: auth, users: users, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	User         *models.PublicUser `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         res.User,
	})
}

// minPasswordLength applies wherever a new password is accepted.
const minPasswordLength = 8

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	email, ok := emailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, common.ErrInvalidAccessToken.Error())
		return
	}

	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "oldPassword and newPassword are required")
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	if err := h.auth.ChangePassword(r.Context(), email, req.OldPassword, req.NewPassword); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "password changed")
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	// Same body whether or not the email is registered.
	writeMessage(w, http.StatusOK, common.GenericForgotPasswordMessage)
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "token and newPassword are required")
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "password updated")
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    *int64 `json:"roleId"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	pub, err := h.users.Register(r.Context(), services.CreateUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleID:    req.RoleID,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pub)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeDomainError maps service errors onto HTTP statuses. Anything not
// recognized is a 500 with a generic body.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrInvalidResetToken), errors.Is(err, common.ErrResetTokenExpired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrRoleNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrEmailAlreadyTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// decodeJSON parses the request body into dst, answering 400 on malformed
// input. Returns false when the response was already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
