package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "Planzee/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "app error passes through",
			err:        appErrors.ErrProjectNotFound,
			wantCode:   "PROJECT_NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped app error is unwrapped",
			err:        fmt.Errorf("carregando: %w", appErrors.ErrTaskNotFound),
			wantCode:   "TASK_NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "gorm record not found",
			err:        gorm.ErrRecordNotFound,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "canceled context",
			err:        context.Canceled,
			wantCode:   "REQUEST_CANCELED",
			wantStatus: http.StatusRequestTimeout,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantCode:   "UNKNOWN_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := appErrors.FromError(tt.err)
			if got.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, got.Code)
			}
			if got.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, got.StatusCode)
			}
		})
	}
}

func TestWithErrorKeepsSentinelIdentity(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := appErrors.ErrBudgetNotFound.WithError(cause)

	if !errors.Is(err, appErrors.ErrBudgetNotFound) {
		t.Fatalf("expected errors.Is to match sentinel by code")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if appErrors.ErrBudgetNotFound.Err != nil {
		t.Fatalf("sentinel must not be mutated")
	}
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	t.Parallel()

	err := appErrors.ErrConflict.WithDetails(map[string]interface{}{"resource": "status"})
	if err.Details["resource"] != "status" {
		t.Fatalf("expected details to be set")
	}
	if len(appErrors.ErrConflict.Details) != 0 {
		t.Fatalf("sentinel details must stay empty")
	}
}

func TestParseValidationErrors(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name     string `validate:"required"`
		Progress int    `validate:"gte=0,lte=100"`
	}

	err := validator.New().Struct(payload{Progress: 120})
	appErr := appErrors.ParseValidationErrors(err)

	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]map[string]string)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected two field errors, got %#v", appErr.Details["fields"])
	}
	if fields[0]["field"] != "nome" || fields[0]["message"] != "nome é obrigatório" {
		t.Fatalf("unexpected first field error: %#v", fields[0])
	}
	if fields[1]["field"] != "progresso" {
		t.Fatalf("unexpected second field error: %#v", fields[1])
	}
}

func TestParseValidationErrorsFallsBackToBadRequest(t *testing.T) {
	t.Parallel()

	appErr := appErrors.ParseValidationErrors(errors.New("json inválido"))
	if appErr.Code != appErrors.ErrBadRequest.Code {
		t.Fatalf("expected BAD_REQUEST, got %s", appErr.Code)
	}
}
