package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type storagePingerMock struct {
	err error
}

func (m *storagePingerMock) Ping(_ context.Context) error {
	return m.err
}

func serveHealth(t *testing.T, h http.HandlerFunc, path string) (int, HealthResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rec.Code, resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: errors.New("down")}, "memory", "test-version")

	code, resp := serveHealth(t, h.Live, "/live")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "storage up", wantCode: http.StatusOK, wantStatus: "ok"},
		{name: "storage down", err: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&storagePingerMock{err: tt.err}, "postgres", "test-version")
			code, resp := serveHealth(t, h.Ready, "/ready")
			if code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, code)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestHealth_ReportsStorageDriver(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{}, "postgres", "v1.0.0")

	code, resp := serveHealth(t, h.Health, "/health")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}

	comp, ok := resp.Components["storage"]
	if !ok {
		t.Fatal("expected 'storage' component in response")
	}
	if comp.Status != "ok" || comp.Driver != "postgres" {
		t.Errorf("got storage %+v, want ok/postgres", comp)
	}
	if comp.Latency == "" {
		t.Error("expected non-empty latency for storage component")
	}
}

func TestHealth_StorageDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: errors.New("connection refused")}, "memory", "v1.0.0")

	code, resp := serveHealth(t, h.Health, "/health")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", code)
	}
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	comp := resp.Components["storage"]
	if comp.Status != "down" || comp.Driver != "memory" || comp.Latency != "" {
		t.Errorf("got storage %+v, want down/memory without latency", comp)
	}
}
