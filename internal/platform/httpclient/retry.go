package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/twinboard/internal/platform/logging"
)

// jitterFraction is the randomization factor applied to every delay (±25%).
const jitterFraction = 0.25

// maxRetryAfter caps how long a Retry-After header can stall a retry.
const maxRetryAfter = 30 * time.Second

// StatusError reports a retryable status that outlived every attempt.
type StatusError struct {
	StatusCode int
	Service    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. Request bodies are buffered so each attempt sends the same bytes.
//
// When the final attempt still returns a retryable status, both the response
// (with its body unread) and a *StatusError are returned; the caller closes
// the body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retryCfg.maxAttempts <= 0 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return nil, err
	}

	attempt := 0
	op := func() (*http.Response, error) {
		attempt++
		resetRequestBody(req, bodyBytes)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		if !isRetryableStatus(r.StatusCode) {
			return r, nil
		}

		statusErr := &StatusError{StatusCode: r.StatusCode, Service: c.serviceName}
		if attempt >= c.retryCfg.maxAttempts {
			return r, backoff.Permanent(statusErr)
		}

		wait := retryAfter(r)
		drainResponseBody(r)
		if wait > 0 {
			return nil, backoff.RetryAfter(int(wait / time.Second))
		}
		return nil, statusErr
	}

	notify := func(err error, delay time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retryCfg.maxAttempts),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retryCfg.maxAttempts)),
		backoff.WithNotify(notify),
	)
}

// newBackOff builds a fresh exponential policy for one Do call.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryCfg.initialInterval
	b.MaxInterval = c.retryCfg.maxInterval
	b.Multiplier = c.retryCfg.multiplier
	b.RandomizationFactor = jitterFraction
	return b
}

// bufferRequestBody reads and closes the request body, returning the bytes
// for replay on subsequent retry attempts. Returns nil if the body is nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody lets the connection be reused before the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter reads a delay-seconds Retry-After header. HTTP-date values and
// anything unparsable yield zero, which falls back to the backoff policy.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter)
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a response status is transient: 429 or 5xx.
func isRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
