package middlewares

import (
	"carelink-web/internal/app/services/core/auth"
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// WithSession guarantees every request carries a session ID cookie and
// hydrates the session state from the durable store into the request
// context. A browser with no cookie gets a fresh anonymous session.
func (m *Middlewares) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.InternalConfig.Session.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}

		state, err := m.SessionStore.Load(r.Context(), sessionID)
		if err != nil {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Error("middlewares.WithSession error loading session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_STATE_KEY, state)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession lets authenticated requests through and bounces
// everything else to the login page. It never renders the protected
// page for an anonymous session.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := SessionStateFromContext(r.Context())
		if !state.Authenticated() {
			http.Redirect(w, r, constvars.RouteLogin, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole bounces an authenticated session of the wrong role to its
// own dashboard instead of showing it a page it cannot use.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := SessionStateFromContext(r.Context())
			if !state.Authenticated() {
				http.Redirect(w, r, constvars.RouteLogin, http.StatusSeeOther)
				return
			}
			if state.Role != role {
				http.Redirect(w, r, auth.DashboardPathForRole(state.Role), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectAuthenticated keeps logged-in users out of the login and
// signup pages by sending them straight to their dashboard. A session
// whose role maps to no dashboard falls through to the page instead of
// redirect-looping on "/".
func (m *Middlewares) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := SessionStateFromContext(r.Context())
		if state.Authenticated() {
			if target := auth.DashboardPathForRole(state.Role); target != constvars.RouteLogin {
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}

func SessionStateFromContext(ctx context.Context) sessions.State {
	state, _ := ctx.Value(constvars.CONTEXT_SESSION_STATE_KEY).(sessions.State)
	return state
}
