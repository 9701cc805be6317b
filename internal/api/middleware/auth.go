package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dpetrucci/hackfest/internal/api/apierr"
	"github.com/dpetrucci/hackfest/internal/model"
	"github.com/dpetrucci/hackfest/internal/services/auth"
)

type contextKey string

const (
	organizerContextKey contextKey = "organizer"
	sessionContextKey   contextKey = "session"
)

// Auth creates authentication middleware for organizer-only routes
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, sessionContextKey, session)
			ctx = context.WithValue(ctx, organizerContextKey, &session.Organizer)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie("session")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetOrganizer returns the authenticated organizer from the request context
func GetOrganizer(ctx context.Context) *model.Organizer {
	organizer, _ := ctx.Value(organizerContextKey).(*model.Organizer)
	return organizer
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// MustGetOrganizer returns the authenticated organizer or panics
func MustGetOrganizer(ctx context.Context) *model.Organizer {
	organizer := GetOrganizer(ctx)
	if organizer == nil {
		panic("no organizer in context - auth middleware not applied?")
	}
	return organizer
}
