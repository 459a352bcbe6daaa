package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskhub/internal/common"
)

// errUnauthenticated is the single outcome for every authentication failure.
var errUnauthenticated = common.ErrorUnauthorized

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(r.Context(), "failed to encode response", "error", err.Error())
	}
}

// writeError maps service errors onto user-visible outcome codes. Anything
// outside the taxonomy becomes an opaque 500; store internals never leak.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "email already registered"})
	case errors.Is(err, common.ErrorUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		s.writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, common.ErrorForbidden):
		s.writeJSON(w, r, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		s.logger.Error(r.Context(), "internal error", "error", err.Error())
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
