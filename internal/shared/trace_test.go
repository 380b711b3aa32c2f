package shared

import (
	"context"
	"testing"
)

func TestTraceID_DefaultDash(t *testing.T) {
	if got := TraceID(context.Background()); got != "-" {
		t.Fatalf("expected %q, got %q", "-", got)
	}
}

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	if got := TraceID(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
}

func TestNewTraceID_NonEmpty(t *testing.T) {
	if NewTraceID() == "" {
		t.Fatal("expected non-empty trace id")
	}
	if NewTraceID() == NewTraceID() {
		t.Fatal("expected distinct trace ids across calls")
	}
}

func TestDispatchSeq_RoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := DispatchSeq(ctx); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	ctx = WithDispatchSeq(ctx, 3)
	if got := DispatchSeq(ctx); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
