package v1handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"summit/internal/api/handler/v1handler"
	"summit/pkg/profile"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *v1handler.Handler, req *http.Request) *http.Response {
	t.Helper()

	mux := http.NewServeMux()
	h.Register(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec.Result()
}

func TestGetProfile_ReturnsFixture(t *testing.T) {
	h := newHandler(t, v1handler.Options{})

	res := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	p, ok := profile.Parse(string(b)).Profile()
	require.True(t, ok)
	require.Equal(t, fixture, p)
}

func TestGetProfile_Delay(t *testing.T) {
	h := newHandler(t, v1handler.Options{MaxDelay: 30 * time.Millisecond})

	start := time.Now()
	res := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/profile?delay=20ms", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	// capped by MaxDelay
	start = time.Now()
	res = serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/profile?delay=1h", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Less(t, time.Since(start), time.Second)
}

func TestGetProfile_DefaultDelay(t *testing.T) {
	h := newHandler(t, v1handler.Options{DefaultDelay: 20 * time.Millisecond})

	start := time.Now()
	res := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestGetProfile_BadDelay(t *testing.T) {
	h := newHandler(t, v1handler.Options{})

	for _, q := range []string{"delay=soon", "delay=-1s"} {
		res := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/profile?"+q, nil))
		require.Equal(t, http.StatusBadRequest, res.StatusCode, q)

		b, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Contains(t, string(b), `"code":"BAD_REQUEST"`)
	}
}

func TestGetProfile_ClientGone(t *testing.T) {
	h := newHandler(t, v1handler.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/v1/profile?delay=5s", nil).WithContext(ctx)

	start := time.Now()
	res := serve(t, h, req)
	require.Less(t, time.Since(start), time.Second)

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestGetProfile_MethodNotAllowed(t *testing.T) {
	h := newHandler(t, v1handler.Options{})

	res := serve(t, h, httptest.NewRequest(http.MethodPost, "/v1/profile", nil))
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
