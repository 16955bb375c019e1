package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/authgate/authgate-go/internal/model"
	"github.com/authgate/authgate-go/internal/service"
	"github.com/authgate/authgate-go/internal/session"
)

type contextKey string

const userKey contextKey = "currentUser"

// CurrentUser resolves the session cookie to a sanitized user view and
// attaches it to the request context. A missing, invalid, or expired
// session, or a session pointing at a user that no longer exists, is
// not an error: the request simply proceeds anonymously.
func CurrentUser(sessions *session.Manager, auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.Read(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.GetUser(r.Context(), userID)
			if err != nil {
				if !errors.Is(err, service.ErrUserNotFound) {
					slog.Warn("loading session user failed", "user_id", userID, "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginRequired redirects anonymous requests to /login before the
// protected handler runs.
func LoginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (model.UserView, bool) {
	user, ok := ctx.Value(userKey).(model.UserView)
	return user, ok
}
