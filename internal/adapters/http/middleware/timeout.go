package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler writes into a buffer on its
// own goroutine. If it returns in time the buffer is copied out; otherwise
// the buffer is dropped, a 504 problem response goes out, and any later
// writes from the handler fail with http.ErrHandlerTimeout. A handler panic
// is re-raised on the serving goroutine so Recovery still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &deadlineBuffer{header: make(http.Header)}
			finished := make(chan any, 1)

			go func() {
				var p any
				defer func() { finished <- p }()
				defer func() { p = recover() }()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				buf.copyTo(w)
			case <-ctx.Done():
				buf.expire()
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request exceeded "+d.String())
			}
		})
	}
}

// deadlineBuffer holds a handler's response until Timeout decides its fate.
// The handler goroutine and the serving goroutine share it under mu.
type deadlineBuffer struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (b *deadlineBuffer) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *deadlineBuffer) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.expired && b.status == 0 {
		b.status = code
	}
}

func (b *deadlineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// expire discards the buffered response and fails further writes.
func (b *deadlineBuffer) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
	b.body = nil
}

func (b *deadlineBuffer) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
