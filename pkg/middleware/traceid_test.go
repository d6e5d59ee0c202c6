package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func traceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r := traceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get("X-Trace-ID")
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("X-Trace-ID %q is not a uuid: %v", header, err)
	}
	if w.Body.String() != header {
		t.Errorf("context trace id %q != header %q", w.Body.String(), header)
	}
}

func TestTraceIDReusesInboundHeader(t *testing.T) {
	r := traceRouter()
	inbound := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", inbound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != inbound {
		t.Errorf("trace id = %q, want inbound %q", got, inbound)
	}
}

func TestTraceIDRejectsMalformedInbound(t *testing.T) {
	r := traceRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "not-a-uuid")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get("X-Trace-ID")
	if got == "not-a-uuid" {
		t.Fatal("malformed inbound trace id was reused")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("replacement trace id %q is not a uuid: %v", got, err)
	}
}
