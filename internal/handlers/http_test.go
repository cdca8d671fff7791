package handlers_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"quizhost/internal/errors"
	"quizhost/internal/handlers"
)

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errors.NotFound("missing"), http.StatusNotFound, handlers.CodeNotFound},
		{"validation", errors.Validation("bad input"), http.StatusBadRequest, handlers.CodeValidation},
		{"invalid phase", errors.InvalidPhase("wrong phase"), http.StatusBadRequest, handlers.CodeInvalidPhase},
		{"unknown player", errors.UnknownPlayer("nobody"), http.StatusBadRequest, handlers.CodeUnknownPlayer},
		{"invalid option", errors.InvalidOption("9"), http.StatusBadRequest, handlers.CodeInvalidOption},
		{"options not revealed", errors.OptionsNotRevealed("options not revealed yet"), http.StatusBadRequest, handlers.CodeOptionsNotRevealed},
		{"no active question", errors.NoActiveQuestion("no active question"), http.StatusBadRequest, handlers.CodeNoActiveQuestion},
		{"at first question", errors.AtFirstQuestion("already at the first question"), http.StatusBadRequest, handlers.CodeAtFirstQuestion},
		{"internal", errors.Internal(stderrors.New("boom")), http.StatusInternalServerError, handlers.CodeInternal},
		{"plain error", stderrors.New("plain"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := handlers.ToAPIError(tt.err)
			if apiErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.wantStatus)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", apiErr.Code, tt.wantCode)
			}
		})
	}
}

func TestToAPIError_HidesInternalDetails(t *testing.T) {
	apiErr := handlers.ToAPIError(errors.Wrap(stderrors.New("sql: database is locked"), errors.ErrInternal, "query failed"))
	if apiErr.Message != "internal server error" {
		t.Errorf("internal error details must not leak, got %q", apiErr.Message)
	}
}
