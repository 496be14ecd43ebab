package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenValidatorMock.ValidateAccessTokenFunc: method is nil but tokenValidator.ValidateAccessToken was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateAccessTokenCalls() []struct{ Token string } {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

func TestAuth(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   bool
		wantCalls  int
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantUser: true, wantCalls: 1},
		{name: "scheme is case-insensitive", header: "bearer good", wantStatus: http.StatusOK, wantUser: true, wantCalls: 1},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized, wantCalls: 1},
		{name: "anonymous", header: "", wantStatus: http.StatusOK},
		{name: "other scheme is anonymous", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			validator := &tokenValidatorMock{
				ValidateAccessTokenFunc: func(token string) (uuid.UUID, error) {
					if token == "good" {
						return userID, nil
					}
					return uuid.Nil, errors.New("invalid token")
				},
			}

			var gotUser bool
			handler := Auth(validator, slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := ctxutil.UserIDFromCtx(r.Context())
				gotUser = ok && id == userID
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotUser != tt.wantUser {
				t.Errorf("user in context = %v, want %v", gotUser, tt.wantUser)
			}
			if n := len(validator.ValidateAccessTokenCalls()); n != tt.wantCalls {
				t.Errorf("validator calls = %d, want %d", n, tt.wantCalls)
			}
		})
	}
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("authenticated status = %d, want 204", rec.Code)
	}
}
