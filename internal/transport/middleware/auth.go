package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"taskhub/internal/auth"
	"taskhub/internal/domain"
	"taskhub/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type userLoader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Auth verifies the bearer token and resolves the caller's account. Requests
// without a token pass through anonymously; the services decide what needs
// authentication. A verified caller whose account has not been synced yet
// carries the token claims with no role, which grants no capabilities.
func Auth(verifier tokenVerifier, users userLoader) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			identity := domain.Identity{
				Email: claims.Email,
				Name:  claims.Name,
			}
			user, err := users.GetByEmail(r.Context(), claims.Email)
			switch {
			case err == nil:
				identity.UserID = user.ID
				identity.Name = user.Name
				identity.Role = user.Role
			case errors.Is(err, domain.ErrNotFound):
				// Verified but not synced yet.
			default:
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
