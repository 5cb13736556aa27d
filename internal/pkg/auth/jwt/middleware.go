package jwt

import (
	"context"
	"net/http"
	"strings"

	"meettoken/internal/pkg/errs"
	"meettoken/internal/pkg/logx"
	"meettoken/internal/pkg/resp"
)

// Define Context Key for storing the caller claims, preventing key collisions with other packages.
type contextKey string

const (
	// ContextCallerKey is the key used to store the parsed *CallerClaims in the request Context.
	ContextCallerKey contextKey = "caller_claims"
)

// RequireCaller returns a middleware that rejects requests without a valid
// "Authorization: Bearer <token>" session token signed with secretKey.
// An empty secretKey disables the check and every request passes through.
func RequireCaller(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secretKey == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			claims, err := ParseToken(parts[1], secretKey)
			if err != nil {
				logx.Ctx(r.Context()).Warn().Err(err).Msg("Rejected caller session token")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), ContextCallerKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCallerFromContext extracts the authenticated caller claims from the request Context.
// A nil return means caller authentication is disabled.
func GetCallerFromContext(r *http.Request) *CallerClaims {
	claims, ok := r.Context().Value(ContextCallerKey).(*CallerClaims)

	if !ok {
		return nil
	}

	return claims
}
