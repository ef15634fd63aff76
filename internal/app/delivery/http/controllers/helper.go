package controllers

import (
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/exceptions"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// dropTokenAndRedirect handles an unauthorized upstream response: the
// stored credential is stale, so it is dropped and the browser is sent
// back to the login page. Role and profile survive so the next login is
// prefilled where possible.
func dropTokenAndRedirect(log *zap.Logger, store sessions.SessionStore, w http.ResponseWriter, r *http.Request) {
	sessionID := middlewares.SessionIDFromContext(r.Context())
	if err := store.DropToken(r.Context(), sessionID); err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		log.Error("controllers.dropTokenAndRedirect error dropping token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	http.Redirect(w, r, constvars.RouteLogin, http.StatusSeeOther)
}

// clientMessage extracts the user-facing message from an error, falling
// back to a generic one for errors that never got wrapped.
func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
