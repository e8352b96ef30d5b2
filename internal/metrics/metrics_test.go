package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/projects/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, path := range []string{"/api/projects/1", "/api/projects/2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/api/projects/:id", "GET", "204")); got != 2 {
		t.Fatalf("expected 2 requests for the route template, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("unmatched", "GET", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}

func TestObserveEvaluationAndHandler(t *testing.T) {
	m := NewMetrics()
	m.ObserveEvaluation("warning", 60, time.Millisecond)
	m.ObserveEvaluation("warning", 70, time.Millisecond)
	m.ObserveLLMCall("ok")

	if got := testutil.ToFloat64(m.evaluationsTotal.WithLabelValues("warning")); got != 2 {
		t.Fatalf("expected 2 warning evaluations, got %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{"planzee_health_evaluations_total", "planzee_llm_calls_total", "planzee_health_score_bucket"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveEvaluation("good", 100, 0)
	m.ObserveLLMCall("error")
}
