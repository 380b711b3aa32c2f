package oteltrace

import "go.opentelemetry.io/otel/metric"

// Metrics holds the metric instruments a MockBot records during dispatches.
type Metrics struct {
	DispatchesTotal metric.Int64Counter
	MessagesSent    metric.Int64Counter
	EndpointCalls   metric.Int64Counter
	EndpointErrors  metric.Int64Counter
}

// NewMetrics creates all metric instruments from the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.DispatchesTotal, err = meter.Int64Counter("telemock.dispatches.total",
		metric.WithDescription("Total Dispatch() calls made on this MockBot"),
	)
	if err != nil {
		return nil, err
	}

	m.MessagesSent, err = meter.Int64Counter("telemock.messages.sent",
		metric.WithDescription("Total messages synthesized across all send/forward/copy endpoints"),
	)
	if err != nil {
		return nil, err
	}

	m.EndpointCalls, err = meter.Int64Counter("telemock.endpoint.calls",
		metric.WithDescription("Total requests handled per endpoint"),
	)
	if err != nil {
		return nil, err
	}

	m.EndpointErrors, err = meter.Int64Counter("telemock.endpoint.errors",
		metric.WithDescription("Total error responses returned per endpoint"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}
