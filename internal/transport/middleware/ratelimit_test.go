package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func doRequest(h http.Handler, remote string, ctx context.Context) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil).WithContext(ctx)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(60, 3, 0)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	for i := range 3 {
		rec := doRequest(handler, "1.2.3.4:1000", context.Background())
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := doRequest(handler, "1.2.3.4:2000", context.Background())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "same IP, different port")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(60, 1, 0)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1", context.Background()).Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2:1", context.Background()).Code)

	// Two users behind the same IP get separate buckets.
	u1 := ctxutil.WithUserID(context.Background(), uuid.New())
	u2 := ctxutil.WithUserID(context.Background(), uuid.New())
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1", u1).Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1", u2).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:1", u1).Code)
}

func TestRateLimiter_Refills(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(60, 1, 0)
	defer rl.Stop()
	now := time.Now()
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	now = now.Add(1100 * time.Millisecond)
	assert.True(t, rl.Allow("k"), "one token per second at 60/min")
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(60, 1, 0)
	defer rl.Stop()
	rl.idleTTL = time.Minute
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(2 * time.Minute)
	rl.Allow("fresh")

	rl.sweep()
	assert.Equal(t, 1, rl.size())
}
