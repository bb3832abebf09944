package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/drillwise/drillwise/internal/drills"
	"github.com/drillwise/drillwise/internal/identity"
	"github.com/drillwise/drillwise/internal/session"
	"github.com/drillwise/drillwise/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

type errorBody struct {
	Error          string `json:"error"`
	Detail         string `json:"detail,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	CompletedToday int    `json:"completedToday,omitempty"`
}

// writeError maps the error taxonomy onto HTTP statuses. Auth,
// validation, and quota failures surface verbatim; everything else is a
// generic 500 so internals stay internal.
func writeError(w http.ResponseWriter, err error) {
	var verr *session.ValidationError
	var qerr *session.QuotaError
	var perr *drills.ParseError
	var derr *store.ErrDegraded

	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "UNAUTHORIZED"})

	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "VALIDATION", Detail: verr.Error()})

	case errors.Is(err, session.ErrProfileRequired):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "PROFILE_REQUIRED", Detail: err.Error()})

	case errors.As(err, &qerr):
		writeJSON(w, http.StatusForbidden, errorBody{
			Error: "FREE_LIMIT", Limit: qerr.Limit, CompletedToday: qerr.CompletedToday,
		})

	case errors.Is(err, session.ErrGenerationSuperseded):
		writeJSON(w, http.StatusConflict, errorBody{Error: "SUPERSEDED", Detail: err.Error()})

	case errors.As(err, &perr):
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "GENERATION_PARSE", Detail: "generated content was unusable; try again"})

	case errors.As(err, &derr):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "PERSISTENCE_DEGRADED"})

	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "INTERNAL"})
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &session.ValidationError{Field: "body", Detail: "request body does not decode"}
	}
	return nil
}
