package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"padala/internal/platform/net/middleware"
)

// logged runs h through the access log middleware and returns the recorder
func logged(opt middleware.RequestLogOptions, h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	middleware.RequestLog(opt)(h).ServeHTTP(rr, req)
	return rr
}

func TestRequestLog_Transparent(t *testing.T) {
	cases := []struct {
		name     string
		opt      middleware.RequestLogOptions
		handler  http.HandlerFunc
		path     string
		wantCode int
		wantBody string
	}{
		{
			name: "status and body pass through",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, "ok")
			},
			path:     "/estimate",
			wantCode: http.StatusCreated,
			wantBody: "ok",
		},
		{
			name: "slow marking leaves the response alone",
			opt:  middleware.RequestLogOptions{Slow: time.Nanosecond},
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(50 * time.Microsecond)
				_, _ = io.WriteString(w, "slow")
			},
			path:     "/slow",
			wantCode: http.StatusOK,
			wantBody: "slow",
		},
		{
			// the byte capture must wrap every Write call, not just the first
			name: "multiple writes concatenate",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("hi"))
				_, _ = w.Write([]byte("there"))
			},
			path:     "/bytes",
			wantCode: http.StatusOK,
			wantBody: "hithere",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := logged(tc.opt, tc.handler, tc.path)
			if rr.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantCode)
			}
			if got := rr.Body.String(); got != tc.wantBody {
				t.Fatalf("body = %q, want %q", got, tc.wantBody)
			}
		})
	}
}
