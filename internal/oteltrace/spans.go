package oteltrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Standard attribute keys for telemock spans.
var (
	AttrEndpoint     = attribute.Key("telemock.endpoint")
	AttrChatID       = attribute.Key("telemock.chat.id")
	AttrMessageID    = attribute.Key("telemock.message.id")
	AttrDispatchSeq  = attribute.Key("telemock.dispatch.seq")
	AttrUpdateCount  = attribute.Key("telemock.update.count")
)

// StartDispatchSpan starts the span wrapping one MockBot.Dispatch call.
func StartDispatchSpan(ctx context.Context, tracer trace.Tracer, seq int, updateCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "telemock.dispatch",
		trace.WithAttributes(AttrDispatchSeq.Int(seq), AttrUpdateCount.Int(updateCount)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartEndpointSpan starts a span for one inbound mock-server request.
func StartEndpointSpan(ctx context.Context, tracer trace.Tracer, endpoint string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := append([]attribute.KeyValue{AttrEndpoint.String(endpoint)}, attrs...)
	return tracer.Start(ctx, "telemock.endpoint."+endpoint,
		trace.WithAttributes(all...),
		trace.WithSpanKind(trace.SpanKindServer),
	)
}
