package oteltrace

import (
	"context"
	"testing"
)

func TestNewMetrics_AllInstrumentsCreated(t *testing.T) {
	p, err := Init(context.Background(), Config{
		Enabled:  true,
		Exporter: "none",
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer p.Shutdown(context.Background())

	m, err := NewMetrics(p.Meter)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	if m.DispatchesTotal == nil {
		t.Error("DispatchesTotal is nil")
	}
	if m.MessagesSent == nil {
		t.Error("MessagesSent is nil")
	}
	if m.EndpointCalls == nil {
		t.Error("EndpointCalls is nil")
	}
	if m.EndpointErrors == nil {
		t.Error("EndpointErrors is nil")
	}
}

func TestNewMetrics_NoopMeter(t *testing.T) {
	// Disabled telemetry returns a noop meter — metrics should still create without error.
	p, err := Init(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer p.Shutdown(context.Background())

	m, err := NewMetrics(p.Meter)
	if err != nil {
		t.Fatalf("NewMetrics with noop: %v", err)
	}
	if m == nil {
		t.Fatal("expected non-nil Metrics")
	}
}
