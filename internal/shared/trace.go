package shared

import (
	"context"

	"github.com/google/uuid"
)

type traceKey struct{}
type dispatchKey struct{}

// WithTraceID attaches a trace_id to the context. The mock server stamps one
// per inbound request; the dispatch harness stamps one per Dispatch() call.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceID)
}

// TraceID extracts trace_id from context. Returns "-" if absent.
func TraceID(ctx context.Context) string {
	if v, ok := ctx.Value(traceKey{}).(string); ok && v != "" {
		return v
	}
	return "-"
}

// NewTraceID generates a new trace_id.
func NewTraceID() string {
	return uuid.NewString()
}

// WithDispatchSeq attaches the ordinal of the current Dispatch() call within
// a MockBot's lifetime, so log lines and spans can be correlated across the
// goroutine boundary each dispatch crosses.
func WithDispatchSeq(ctx context.Context, seq int) context.Context {
	return context.WithValue(ctx, dispatchKey{}, seq)
}

// DispatchSeq extracts the dispatch ordinal from context. Returns -1 if absent.
func DispatchSeq(ctx context.Context) int {
	if v, ok := ctx.Value(dispatchKey{}).(int); ok {
		return v
	}
	return -1
}
