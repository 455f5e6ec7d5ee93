package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/auth"
)

type contextKey string

const emailContextKey contextKey = "auth.email"

// emailFromContext returns the authenticated email stored by RequireAuth.
func emailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok && email != ""
}

// RequireAuth validates the bearer access token and stores the subject email
// in the request context. Requests without a valid token get a 401.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeError(w, http.StatusUnauthorized, common.ErrInvalidAccessToken.Error())
				return
			}

			claims, err := auth.ParseAccessToken(token, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, common.ErrInvalidAccessToken.Error())
				return
			}

			ctx := context.WithValue(r.Context(), emailContextKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
