// Package httpprofile provides a profile.Fetcher that retrieves the profile
// document with a single HTTP request.
package httpprofile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"summit/pkg/domain"
	"summit/pkg/logger"
	"summit/pkg/metrics"
	"summit/pkg/profile"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const (
	instrumentationName = "summit/pkg/profile/httpprofile"

	// DefaultMaxBodyBytes bounds the response body when Options.MaxBodyBytes is zero.
	DefaultMaxBodyBytes = 1 << 20

	// RequestIDHeader carries the per-exchange correlation ID.
	RequestIDHeader = "X-Request-Id"

	outcomeSuccess = "success"
)

// Options configures a Client.
type Options struct {
	// Endpoint is the absolute URL of the profile document.
	Endpoint string
	// Method defaults to GET.
	Method string
	// Timeout bounds one exchange, including reading the body. Zero means no
	// limit beyond the caller's context.
	Timeout time.Duration
	// MaxBodyBytes caps the body size; larger bodies are a network failure.
	MaxBodyBytes int64
	// Dispatcher is where completion handlers run. Defaults to profile.Immediate.
	Dispatcher profile.Dispatcher

	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// Client fetches profiles over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	method     string
	timeout    time.Duration
	maxBody    int64
	dispatcher profile.Dispatcher

	tracer   trace.Tracer
	results  metric.Int64Counter
	duration metric.Float64Histogram
}

// Ensure Client conforms to the profile.Fetcher interface at compile time.
var _ profile.Fetcher = (*Client)(nil)

// New constructs a Client that sends requests with httpClient.
func New(httpClient *http.Client, opts Options) (*Client, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("could not parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint must be an absolute http(s) url: %q", opts.Endpoint)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = profile.Immediate
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = metricnoop.NewMeterProvider()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = tracenoop.NewTracerProvider()
	}

	meter := opts.MeterProvider.Meter(instrumentationName)
	results, err := meter.Int64Counter("profile.fetch.results",
		metric.WithDescription("Completed profile fetches by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create results counter: %w", err)
	}
	duration, err := meter.Float64Histogram("profile.fetch.duration",
		metric.WithDescription("Duration of profile fetches."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   u.String(),
		method:     strings.ToUpper(opts.Method),
		timeout:    opts.Timeout,
		maxBody:    opts.MaxBodyBytes,
		dispatcher: opts.Dispatcher,
		tracer:     opts.TracerProvider.Tracer(instrumentationName),
		results:    results,
		duration:   duration,
	}, nil
}

// Fetch starts one exchange with the profile endpoint and returns at once.
// onComplete receives exactly one result on the client's dispatcher.
// The credentials identify the caller in logs only; they are not sent.
func (c *Client) Fetch(ctx context.Context, creds domain.Credentials, onComplete func(domain.FetchResult)) *profile.Call {
	return profile.Start(ctx, c.dispatcher, onComplete, func(ctx context.Context) domain.FetchResult {
		return c.exchange(ctx, creds)
	})
}

func (c *Client) exchange(ctx context.Context, creds domain.Credentials) domain.FetchResult {
	requestID := uuid.NewString()
	ctx = logger.WithFields(ctx, zap.String("request_id", requestID))
	ctx, span := c.tracer.Start(ctx, "profile.Fetch", trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", c.method),
			attribute.String("url.full", c.endpoint),
		))
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger.Debug(ctx, "fetching profile", zap.String("username", creds.Username))

	start := time.Now()
	res := c.do(ctx, requestID)
	elapsed := time.Since(start)

	outcome := outcomeSuccess
	if f, ok := res.Failure(); ok {
		outcome = strings.ToLower(f.Kind.Error())
		span.RecordError(f.Cause)
		span.SetStatus(codes.Error, f.Message)
		logger.Warn(ctx, "profile fetch failed",
			zap.String("kind", f.Kind.Error()),
			zap.Bool("canceled", res.Canceled()),
			zap.Duration("elapsed", elapsed),
			zap.Error(f.Cause))
	} else {
		p, _ := res.Profile()
		span.SetAttributes(attribute.Int("profile.transactions", p.Len()))
		if !p.HasValidCardLastFour() {
			logger.Warn(ctx, "card identifier is not four digits", zap.Int("length", len(p.CardLastFour)))
		}
		logger.Info(ctx, "profile fetched",
			zap.Int("transactions", p.Len()),
			zap.Duration("elapsed", elapsed))
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	c.results.Add(context.WithoutCancel(ctx), 1, attrs)
	c.duration.Record(context.WithoutCancel(ctx), elapsed.Seconds(), attrs)

	return res
}

func (c *Client) do(ctx context.Context, requestID string) domain.FetchResult {
	req, err := http.NewRequestWithContext(ctx, c.method, c.endpoint, nil)
	if err != nil {
		return domain.NetworkFailure(fmt.Errorf("could not create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NetworkFailure(fmt.Errorf("could not send request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return domain.NetworkFailure(fmt.Errorf("could not read response body: %w", err))
	}
	if int64(len(b)) > c.maxBody {
		return domain.NetworkFailure(fmt.Errorf("response body exceeds %d bytes", c.maxBody))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NetworkFailure(&StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))})
	}

	return profile.FromBody(b)
}

// StatusError reports a response whose status is not 2xx.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}

	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == code
	}

	return false
}
