package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestRecovererAndLogger(t *testing.T) {
	handler := RequestLogger(false)(Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Something went wrong, try again later"}`, w.Body.String())
}

func TestRequestLoggerClientIP(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name       string
		trustProxy bool
		want       string
	}{
		{"proxy trusted", true, "203.0.113.9"},
		{"proxy ignored", false, "10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
			req.RemoteAddr = "10.0.0.1:4000"
			req.Header.Set("X-Forwarded-For", "203.0.113.9")

			RequestLogger(tt.trustProxy)(ok).ServeHTTP(httptest.NewRecorder(), req)

			assert.Contains(t, buf.String(), `"ip":"`+tt.want+`"`)
			assert.Equal(t, tt.want, ClientIP(req, tt.trustProxy))
		})
	}
}

