package v1handler

import (
	"net/http"
	"summit/pkg/logger"
	"summit/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DelayParam names the query parameter that asks for artificial latency, as a
// Go duration such as "2500ms".
const DelayParam = "delay"

func statusAttr(status int) attribute.KeyValue {
	return attribute.Int("http.response.status_code", status)
}

// GetProfile handles GET /v1/profile: it waits for the requested or default
// delay and returns the fixture.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	delay, err := h.delay(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if delay > 0 {
		logger.Debug(ctx, "delaying profile response", zap.Duration("delay", delay))
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			logger.Debug(ctx, "client went away during delay", zap.Error(ctx.Err()))

			return
		case <-timer.C:
		}
	}

	h.write(w, r, http.StatusOK, h.body)
}

func (h *Handler) delay(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get(DelayParam)
	if raw == "" {
		return h.capDelay(h.options.DefaultDelay), nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s %q", DelayParam, raw)
	}
	if d < 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must not be negative", DelayParam)
	}

	return h.capDelay(d), nil
}

func (h *Handler) capDelay(d time.Duration) time.Duration {
	if h.options.MaxDelay > 0 && d > h.options.MaxDelay {
		return h.options.MaxDelay
	}

	return d
}
