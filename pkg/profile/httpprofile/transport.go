package httpprofile

import (
	"bytes"
	"io"
	"net/http"
	"summit/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// maxLoggedBody bounds how much of a body ends up in a single log entry.
const maxLoggedBody = 4 << 10

// LoggingTransport logs every round trip it forwards to Base. Bodies are only
// logged when LogBodies is set and the request context logger is at debug
// level.
type LoggingTransport struct {
	Base      http.RoundTripper
	LogBodies bool
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	withBodies := t.LogBodies && logger.IsDebug(ctx)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	}
	if withBodies && req.Body != nil && req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			b, _ := io.ReadAll(io.LimitReader(body, maxLoggedBody))
			_ = body.Close()
			fields = append(fields, zap.ByteString("request_body", b))
		}
	}
	logger.Debug(ctx, "--> http request", fields...)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		logger.Debug(ctx, "<-- http failed", zap.Duration("elapsed", elapsed), zap.Error(err))

		return nil, err
	}

	fields = []zap.Field{
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	}
	if withBodies && resp.Body != nil {
		b, rerr := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
		resp.Body = &replayBody{Reader: io.MultiReader(bytes.NewReader(b), resp.Body), closer: resp.Body}
		if rerr == nil {
			fields = append(fields, zap.ByteString("response_body", b))
		}
	}
	logger.Debug(ctx, "<-- http response", fields...)

	return resp, nil
}

// replayBody yields the bytes already consumed for logging followed by the
// rest of the original body.
type replayBody struct {
	io.Reader
	closer io.Closer
}

func (b *replayBody) Close() error { return b.closer.Close() }
