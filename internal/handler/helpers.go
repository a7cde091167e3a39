package handler

import (
	"errors"
	"net/http"

	"snipvault/internal/domain"
	"snipvault/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPrecondition):
		httputil.RespondError(w, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		httputil.RespondError(w, http.StatusServiceUnavailable, "store unavailable, retry later")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireUserID extracts the authenticated user ID, rejecting the request
// when the auth middleware did not establish one.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httputil.GetUserID(r)
	if userID == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}
