// Package rest serves the JSON API. Responses use a uniform envelope:
// successes carry {"success": true, "data": ...} plus optional pagination or
// count fields, failures carry {"success": false, "error": ...}.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

type envelope struct {
	Success    bool         `json:"success"`
	Data       any          `json:"data,omitempty"`
	Message    string       `json:"message,omitempty"`
	Count      *int         `json:"count,omitempty"`
	Pagination *pagination  `json:"pagination,omitempty"`
	Error      string       `json:"error,omitempty"`
	Errors     []fieldError `json:"errors,omitempty"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognized is
// a 500 and gets logged; expected domain failures are not logged here.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make([]fieldError, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   "validation failed",
			Errors:  fields,
		})
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
