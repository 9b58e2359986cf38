package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-breakfast/models"
	"go-breakfast/utils"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

// SessionResolver looks up the session named by a verified token
type SessionResolver interface {
	Get(id string) (*models.Session, error)
}

// SessionMiddleware verifies the session token and attaches the session to the context
func SessionMiddleware(issuer *utils.TokenIssuer, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.ParseSessionToken(parts[1])
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			session, err := sessions.Get(claims.SessionID)
			if err != nil {
				http.Error(w, "Session expired or unknown", http.StatusUnauthorized)
				return
			}

			ctx := WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSession returns a copy of ctx carrying session
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// SessionFromContext returns the session attached by SessionMiddleware
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*models.Session)
	return session, ok && session != nil
}
