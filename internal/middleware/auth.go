package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hongminglow/eletronicos-be/internal/auth"
	"github.com/hongminglow/eletronicos-be/internal/http/respond"
)

const (
	msgMissingToken = "Nenhum token fornecido."
	msgInvalidToken = "Falha ao autenticar o token."
)

// RequireToken rejects requests without a valid bearer token and attaches
// the token's identity to the request context.
//
// A missing header is 403. A malformed, tampered or expired token is 500,
// which is what clients of the first release were written against.
func RequireToken(tokens *auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := auth.BearerToken(r.Header.Get("Authorization"))
			if errors.Is(err, auth.ErrMissingToken) {
				respond.Error(w, http.StatusForbidden, msgMissingToken)
				return
			}
			if err == nil {
				var id auth.Identity
				if id, err = tokens.Parse(raw); err == nil {
					next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
					return
				}
			}
			logger.WarnContext(r.Context(), "token rejected",
				"path", r.URL.Path,
				"expired", errors.Is(err, auth.ErrTokenExpired),
				"request_id", RequestIDFromContext(r.Context()),
				"error", err,
			)
			respond.Error(w, http.StatusInternalServerError, msgInvalidToken)
		})
	}
}
