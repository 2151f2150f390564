package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type contextKey struct{}

// WithIdentity returns a context carrying the verified identity. Only the
// RequireSession middleware populates it in production.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, ident)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(contextKey{}).(Identity)
	return ident, ok
}

// RequireSession rejects requests without a valid session cookie and attaches
// the verified identity to the request context for downstream handlers.
func RequireSession(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, messageResponse{Message: "unauthorized access"})
				return
			}
			ident, err := tokens.Verify(cookie.Value)
			if err != nil {
				slog.Debug("session verification failed", "err", err)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, messageResponse{Message: "unauthorized access"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		})
	}
}
