// Package v1handler serves the v1 mock profile API.
package v1handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"summit/pkg/domain"
	"summit/pkg/logger"
	"summit/pkg/profile"
	"summit/pkg/serrors"
	"time"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const instrumentationName = "summit/internal/api/handler/v1handler"

// Deps holds what the handler serves and reports to.
type Deps struct {
	// Fixture is the profile returned by GET /v1/profile.
	Fixture domain.Profile
	// MeterProvider records served responses. Optional.
	MeterProvider metric.MeterProvider
}

// Options tune the artificial latency of responses.
type Options struct {
	// DefaultDelay applies when the request does not ask for a delay.
	DefaultDelay time.Duration
	// MaxDelay caps any delay; zero means delays are not capped.
	MaxDelay time.Duration
}

// Handler implements the v1 routes.
type Handler struct {
	body    []byte
	options Options
	served  metric.Int64Counter
}

// New creates a Handler serving deps.Fixture.
func New(deps Deps, options Options) (*Handler, error) {
	mp := deps.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	served, err := mp.Meter(instrumentationName).Int64Counter("profile.served",
		metric.WithDescription("Profile responses by status code."))
	if err != nil {
		return nil, fmt.Errorf("could not create served counter: %w", err)
	}

	return &Handler{
		body:    profile.Encode(deps.Fixture),
		options: options,
		served:  served,
	}, nil
}

// ParseFixture decodes a fixture document with the same rules clients apply.
func ParseFixture(raw []byte) (domain.Profile, error) {
	res := profile.FromBody(raw)
	if err := res.Err(); err != nil {
		return domain.Profile{}, fmt.Errorf("invalid fixture: %w", err)
	}
	p, _ := res.Profile()

	return p, nil
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/profile", h.GetProfile)
}

// ErrorResponse is the JSON body and status of a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// NewError maps err to a response. Semantic kinds choose the status; other
// errors become 500 without leaking their text.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	var kind serrors.Kind
	_ = errors.As(err, &kind)

	var semantic *serrors.Error
	message := ""
	if errors.As(err, &semantic) {
		message = semantic.Message()
	}

	switch kind {
	case serrors.ErrBadRequest:
		return newErrorResponse(http.StatusBadRequest, kind, message, "bad request")
	case serrors.ErrNotFound:
		return newErrorResponse(http.StatusNotFound, kind, message, "resource not found")
	case serrors.ErrConflict:
		return newErrorResponse(http.StatusConflict, kind, message, "conflict")
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return newErrorResponse(http.StatusInternalServerError, serrors.ErrInternal, "", "internal error")
	}
}

func newErrorResponse(status int, kind serrors.Kind, message, fallback string) *ErrorResponse {
	if message == "" {
		message = fallback
	}

	return &ErrorResponse{StatusCode: status, Code: kind.Error(), Message: message}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	h.write(w, r, res.StatusCode, e.Bytes())
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
	h.served.Add(context.WithoutCancel(r.Context()), 1, metric.WithAttributes(statusAttr(status)))
}
