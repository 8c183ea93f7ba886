package handler

// RESPONSE HELPERS:
// Every endpoint answers with one of three JSON shapes:
//
//	success with a message:  {"msg": "Contact added successfully"}
//	success with data:       {"user_id": 3}, {"total": 2}, [ …contacts… ]
//	any error:               {"error": "<human-readable reason>"}
//
// writeJSON and writeError keep those shapes consistent so the frontend
// always knows which field to read.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/z1f7/832301306-contacts-backend/internal/apperror"
)

// MessageResponse is the body of message-only successes.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status code. Headers and
// status must be written before the body — once Encode writes, they're sent.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already out; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to its HTTP status and sends the error
// body.
//
// THE MAPPING:
//
//	ErrMissingField       → 400
//	ErrConflict           → 400 (a taken username is a client error here,
//	                             not a 409 — the frontend treats both the
//	                             same way)
//	ErrInvalidCredentials → 401
//	ErrNotFound           → 404
//	anything else         → 500, with the underlying message echoed so the
//	                             caller sees what failed
//
// errors.Is walks the wrapped chain (services wrap with %w), so the
// sentinel is found no matter how many layers added context. errors.As
// pulls out the *AppError carrying the human-readable message.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrMissingField):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrInvalidCredentials):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}

		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	// Unexpected failure (database error, etc.) — terminal for this
	// request, message echoed to the caller.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
