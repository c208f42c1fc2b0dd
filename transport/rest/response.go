package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/service"
)

var ErrBadRequest = errors.New("invalid request body")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeError - maps known errors to a status; anything else is a 500 without details.
func writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	writeJSON(w, status, &errorResponse{Error: message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, apperror.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidAccessToken):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUserAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrBadRequest
	}

	return nil
}
