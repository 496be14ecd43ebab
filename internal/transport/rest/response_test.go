package rest

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "validation", err: domain.NewValidationError("name", "required"), wantStatus: http.StatusBadRequest, wantBody: `"field":"name"`},
		{name: "unauthorized", err: domain.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "forbidden", err: fmt.Errorf("collection x: %w", domain.ErrForbidden), wantStatus: http.StatusForbidden},
		{name: "not found", err: fmt.Errorf("get word: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "already exists", err: domain.ErrAlreadyExists, wantStatus: http.StatusConflict},
		{name: "conflict", err: domain.ErrConflict, wantStatus: http.StatusConflict},
		{name: "internal", err: errors.New("db is on fire"), wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))
			rec := httptest.NewRecorder()

			handleError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), log, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if strings.Contains(rec.Body.String(), "fire") {
				t.Error("internal error details leaked to the client")
			}
			if tt.wantStatus == http.StatusInternalServerError && !strings.Contains(logs.String(), "db is on fire") {
				t.Error("internal error was not logged")
			}
		})
	}
}
