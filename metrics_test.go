package capitol

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewMetricsCollectorWithRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	if collector == nil {
		t.Fatal("NewMetricsCollectorWithRegistry() returned nil")
	}
	if collector.requestsTotal == nil {
		t.Error("requestsTotal metric not initialized")
	}
	if collector.requestDuration == nil {
		t.Error("requestDuration metric not initialized")
	}
	if collector.requestsInFlight == nil {
		t.Error("requestsInFlight metric not initialized")
	}
	if collector.errorsTotal == nil {
		t.Error("errorsTotal metric not initialized")
	}
	if collector.rateLimitDenials == nil {
		t.Error("rateLimitDenials metric not initialized")
	}
}

func TestMetricsCollectorRecording(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	collector.RecordRequestStart("member")
	collector.RecordRequestEnd("member")
	collector.RecordRequest("member", 200, 42*time.Millisecond)
	collector.RecordError(ErrorTypeParse, "member")
	collector.RecordRateLimitDenial("member")

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}

	found := map[string]bool{}
	for _, family := range families {
		found[family.GetName()] = true
	}
	for _, name := range []string{
		"capitol_requests_total",
		"capitol_request_duration_seconds",
		"capitol_errors_total",
		"capitol_rate_limit_denials_total",
	} {
		if !found[name] {
			t.Errorf("Expected metric family %s after recording", name)
		}
	}
}

func TestClientRecordsRequestMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, sandersPayload)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	client := newTestClient(server.URL, WithMetricsRegistry(registry))

	if _, err := client.FetchMemberByBioguideID(context.Background(), "S000033"); err != nil {
		t.Fatalf("FetchMemberByBioguideID() returned error: %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}

	var sawRequest bool
	for _, family := range families {
		if family.GetName() != "capitol_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["operation"] == "member" && labels["status"] == "200" {
				sawRequest = metric.GetCounter().GetValue() == 1
			}
		}
	}
	if !sawRequest {
		t.Error("Expected capitol_requests_total{operation=member,status=200} == 1")
	}
}
