package httpprofile_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"summit/pkg/domain"
	"summit/pkg/logger"
	"summit/pkg/metrics"
	"summit/pkg/profile"
	"summit/pkg/profile/httpprofile"
	"summit/pkg/serrors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	endpoint = "https://profile.test/v1/profile"
	nickBody = `{"name":"Nick C.","cardLastFour":"7890","transactions":[` +
		`{"merchant":"Starbucks","amount":"$1.40"},{"merchant":"Macy's","amount":"$35.00"}]}`
)

var creds = domain.Credentials{Username: "nick", Password: "s3cret"} //nolint: gochecknoglobals

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func newTestClient(t *testing.T, fn http.RoundTripper, opts httpprofile.Options) *httpprofile.Client {
	t.Helper()

	if opts.Endpoint == "" {
		opts.Endpoint = endpoint
	}
	c, err := httpprofile.New(&http.Client{Transport: fn}, opts)
	require.NoError(t, err)

	return c
}

func fetch(t *testing.T, c *httpprofile.Client) domain.FetchResult {
	t.Helper()

	results := make(chan domain.FetchResult, 2)
	c.Fetch(context.Background(), creds, func(res domain.FetchResult) { results <- res })

	var res domain.FetchResult
	select {
	case res = <-results:
	case <-time.After(2 * time.Second):
		t.Fatalf("handler was not invoked")
	}
	select {
	case <-results:
		t.Fatalf("handler invoked twice")
	case <-time.After(20 * time.Millisecond):
	}

	return res
}

func TestNew_InvalidEndpoint(t *testing.T) {
	for _, ep := range []string{"", "/v1/profile", "ftp://x/profile", "http://[::1"} {
		_, err := httpprofile.New(nil, httpprofile.Options{Endpoint: ep})
		require.Error(t, err, ep)
	}
}

func TestClient_Fetch_success(t *testing.T) {
	c := newTestClient(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "profile.test", r.URL.Host)
		require.Equal(t, "/v1/profile", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NotEmpty(t, r.Header.Get(httpprofile.RequestIDHeader))
		require.Nil(t, r.Body)
		require.Empty(t, r.Header.Get("Authorization"))
		require.NotContains(t, r.URL.String(), creds.Password)

		return respond(http.StatusOK, nickBody)(r)
	}), httpprofile.Options{})

	res := fetch(t, c)
	p, ok := res.Profile()
	require.True(t, ok)
	require.Equal(t, "Nick C.", p.Name)
	require.Equal(t, 2, p.Len())
}

func TestClient_Fetch_customMethod(t *testing.T) {
	c := newTestClient(t, rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)

		return respond(http.StatusOK, nickBody)(r)
	}), httpprofile.Options{Method: "post"})

	require.True(t, fetch(t, c).OK())
}

func TestClient_Fetch_failures(t *testing.T) {
	tests := []struct {
		name string
		rt   rtFunc
		opts httpprofile.Options
		kind serrors.Kind
	}{
		{
			name: "transport error",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			kind: serrors.ErrNetwork,
		},
		{name: "empty body", rt: respond(http.StatusOK, ""), kind: serrors.ErrNetwork},
		{name: "blank body", rt: respond(http.StatusOK, "  \n"), kind: serrors.ErrNetwork},
		{name: "server error", rt: respond(http.StatusInternalServerError, nickBody), kind: serrors.ErrNetwork},
		{name: "not found", rt: respond(http.StatusNotFound, ""), kind: serrors.ErrNetwork},
		{
			name: "oversized body",
			rt:   respond(http.StatusOK, nickBody),
			opts: httpprofile.Options{MaxBodyBytes: 16},
			kind: serrors.ErrNetwork,
		},
		{name: "incomplete profile", rt: respond(http.StatusOK, `{"name":"X"}`), kind: serrors.ErrParse},
		{name: "html", rt: respond(http.StatusOK, "<html></html>"), kind: serrors.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.rt, tt.opts)

			res := fetch(t, c)
			f, ok := res.Failure()
			require.True(t, ok)
			require.Equal(t, tt.kind, f.Kind)
			require.Error(t, f.Cause)
			require.False(t, res.Canceled())
			if tt.kind == serrors.ErrNetwork {
				require.Equal(t, domain.NetworkFailureMessage, f.Message)
			} else {
				require.Equal(t, domain.ParseFailureMessage, f.Message)
			}
		})
	}
}

func TestClient_Fetch_statusError(t *testing.T) {
	c := newTestClient(t, respond(http.StatusBadGateway, "upstream down"), httpprofile.Options{})

	f, ok := fetch(t, c).Failure()
	require.True(t, ok)
	require.True(t, httpprofile.IsStatus(f.Cause, http.StatusBadGateway))
	require.Contains(t, f.Cause.Error(), "upstream down")
}

func TestClient_Fetch_timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c, err := httpprofile.New(srv.Client(), httpprofile.Options{
		Endpoint: srv.URL + "/v1/profile",
		Timeout:  20 * time.Millisecond,
	})
	require.NoError(t, err)

	res := fetch(t, c)
	f, ok := res.Failure()
	require.True(t, ok)
	require.Equal(t, serrors.ErrNetwork, f.Kind)
	require.ErrorIs(t, f.Cause, context.DeadlineExceeded)
}

func TestClient_Fetch_cancel(t *testing.T) {
	arrived := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := httpprofile.New(srv.Client(), httpprofile.Options{Endpoint: srv.URL})
	require.NoError(t, err)

	results := make(chan domain.FetchResult, 2)
	call := c.Fetch(context.Background(), creds, func(res domain.FetchResult) { results <- res })
	<-arrived
	call.Cancel()

	select {
	case res := <-results:
		require.Equal(t, serrors.ErrNetwork, res.Kind())
		require.True(t, res.Canceled())
	case <-time.After(2 * time.Second):
		t.Fatalf("handler was not invoked")
	}
	select {
	case <-results:
		t.Fatalf("handler invoked twice")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestClient_Fetch_dispatcher(t *testing.T) {
	loop := profile.NewLoop()
	c := newTestClient(t, respond(http.StatusOK, nickBody), httpprofile.Options{Dispatcher: loop})

	var got []domain.FetchResult
	c.Fetch(context.Background(), creds, func(res domain.FetchResult) {
		got = append(got, res)
		loop.Close()
	})

	require.NoError(t, loop.Run(context.Background()))
	require.Len(t, got, 1)
	require.True(t, got[0].OK())
}

func TestClient_Fetch_metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(context.Background()) }()

	c := newTestClient(t, respond(http.StatusOK, nickBody), httpprofile.Options{MeterProvider: mp})
	require.True(t, fetch(t, c).OK())

	c = newTestClient(t, respond(http.StatusOK, `{"name":"X"}`), httpprofile.Options{MeterProvider: mp})
	require.False(t, fetch(t, c).OK())

	families, err := reg.Gather()
	require.NoError(t, err)

	outcomes := map[string]float64{}
	var sawDuration bool
	for _, mf := range families {
		switch mf.GetName() {
		case "profile_fetch_results_total":
			for _, m := range mf.GetMetric() {
				for _, l := range m.GetLabel() {
					if l.GetName() == "outcome" {
						outcomes[l.GetValue()] += m.GetCounter().GetValue()
					}
				}
			}
		case "profile_fetch_duration_seconds":
			sawDuration = true
		}
	}
	require.Equal(t, map[string]float64{"success": 1, "parse_error": 1}, outcomes)
	require.True(t, sawDuration)
}

func TestClient_Fetch_logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Get(context.Background())
	logger.SetDefault(zap.New(core))
	defer logger.SetDefault(prev)

	body := `{"name":"A","cardLastFour":"12","transactions":[]}`
	c := newTestClient(t, respond(http.StatusOK, body), httpprofile.Options{})
	require.True(t, fetch(t, c).OK())

	require.Equal(t, 1, logs.FilterMessage("card identifier is not four digits").Len())
	require.Equal(t, 1, logs.FilterMessage("profile fetched").Len())
	for _, e := range logs.All() {
		for _, v := range e.ContextMap() {
			if s, ok := v.(string); ok {
				require.NotContains(t, s, creds.Password)
			}
		}
	}
}
