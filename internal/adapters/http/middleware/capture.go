// Package middleware holds the inbound HTTP pipeline. The server installs it
// on the chi router outermost first:
//
//	Recovery, RequestID, OpenTelemetry, Logging, Timeout
//
// so a panic anywhere below Recovery still produces a problem response and a
// log line carrying the request ID.
package middleware

import "net/http"

// capture records what a handler sent through it: the status, whether the
// header went out, and how many body bytes were written.
type capture struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func newCapture(w http.ResponseWriter) *capture {
	return &capture{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only, as net/http does.
func (c *capture) WriteHeader(code int) {
	if c.started {
		return
	}
	c.status, c.started = code, true
	c.ResponseWriter.WriteHeader(code)
}

func (c *capture) Write(b []byte) (int, error) {
	c.started = true
	n, err := c.ResponseWriter.Write(b)
	c.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and Hijack on the
// underlying writer.
func (c *capture) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}
