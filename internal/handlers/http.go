package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"quizhost/internal/errors"
)

// APIError is the JSON error envelope returned by every API endpoint.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned in the APIError envelope.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidPhase       = "INVALID_PHASE"
	CodeUnknownPlayer      = "UNKNOWN_PLAYER"
	CodeInvalidOption      = "INVALID_OPTION"
	CodeOptionsNotRevealed = "OPTIONS_NOT_REVEALED"
	CodeNoActiveQuestion   = "NO_ACTIVE_QUESTION"
	CodeAtFirstQuestion    = "AT_FIRST_QUESTION"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// ToAPIError maps a service error to its HTTP status and error code.
func ToAPIError(err error) APIError {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return APIError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
	}

	switch e.Kind {
	case errors.ErrNotFound:
		return APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: e.Message}
	case errors.ErrValidation:
		return APIError{Status: http.StatusBadRequest, Code: CodeValidation, Message: e.Message}
	case errors.ErrInvalidPhase:
		return APIError{Status: http.StatusBadRequest, Code: CodeInvalidPhase, Message: e.Message}
	case errors.ErrUnknownPlayer:
		return APIError{Status: http.StatusBadRequest, Code: CodeUnknownPlayer, Message: e.Message}
	case errors.ErrInvalidOption:
		return APIError{Status: http.StatusBadRequest, Code: CodeInvalidOption, Message: e.Message}
	case errors.ErrOptionsNotRevealed:
		return APIError{Status: http.StatusBadRequest, Code: CodeOptionsNotRevealed, Message: e.Message}
	case errors.ErrNoActiveQuestion:
		return APIError{Status: http.StatusBadRequest, Code: CodeNoActiveQuestion, Message: e.Message}
	case errors.ErrAtFirstQuestion:
		return APIError{Status: http.StatusBadRequest, Code: CodeAtFirstQuestion, Message: e.Message}
	default:
		return APIError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, err error) {
	apiErr := ToAPIError(err)
	respondJSON(w, apiErr.Status, map[string]any{
		"success": false,
		"error":   apiErr,
	})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   APIError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: message},
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
