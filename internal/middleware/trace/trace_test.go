package trace

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMetricsRunningAverage(t *testing.T) {
	m := NewMiddleware(nil)
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	got := m.GetMetrics()
	if got.TotalRequests != 3 {
		t.Fatalf("TotalRequests = %d, want 3", got.TotalRequests)
	}
	// each request sleeps at least 2ms, so the mean cannot drop below that
	if got.AverageResponseTime < 2000 {
		t.Fatalf("AverageResponseTime = %dµs, want >= 2000", got.AverageResponseTime)
	}
}

func TestMetricsEmpty(t *testing.T) {
	m := NewMiddleware(nil)
	got := m.GetMetrics()
	if got.TotalRequests != 0 || got.AverageResponseTime != 0 {
		t.Fatalf("fresh middleware should report zeros, got %+v", got)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	m := NewMiddleware(nil)
	var seen string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatalf("handler should see a request id in the context")
	}
}
