package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const meterName = "github.com/louisbranch/dicebox/internal/observability"

// OTelSink records use-case events as OpenTelemetry metrics and, when a span
// is recording, span events. Instruments come from the global meter provider,
// so without a configured provider every record is a no-op.
type OTelSink struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
	faces    metric.Int64Histogram
}

// NewOTelSink creates instruments on the global meter provider.
func NewOTelSink() (*OTelSink, error) {
	meter := otel.Meter(meterName)

	calls, err := meter.Int64Counter(
		"dicebox.use_case.calls",
		metric.WithDescription("Completed use-case invocations by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create calls counter: %w", err)
	}
	duration, err := meter.Float64Histogram(
		"dicebox.use_case.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Use-case duration including roll resolution and persistence."),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}
	faces, err := meter.Int64Histogram(
		"dicebox.roll.result",
		metric.WithDescription("Face values of rolled dice, attributed by die type."),
	)
	if err != nil {
		return nil, fmt.Errorf("create roll result histogram: %w", err)
	}

	return &OTelSink{calls: calls, duration: duration, faces: faces}, nil
}

// Record implements Sink.
func (s *OTelSink) Record(ctx context.Context, evt Event) {
	if s == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("use_case", evt.UseCase),
		attribute.String("outcome", string(evt.Outcome)),
	)
	s.calls.Add(ctx, 1, attrs)
	s.duration.Record(ctx, evt.Duration.Seconds(), attrs)
	for _, result := range evt.Results {
		s.faces.Record(ctx, int64(result.Value), metric.WithAttributes(
			attribute.String("die", result.Die.String()),
		))
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		spanAttrs := []attribute.KeyValue{
			attribute.String("use_case", evt.UseCase),
			attribute.String("outcome", string(evt.Outcome)),
		}
		if evt.RollID != "" {
			spanAttrs = append(spanAttrs, attribute.String("roll_id", evt.RollID))
		}
		span.AddEvent("dicebox.use_case", trace.WithAttributes(spanAttrs...))
	}
}

var _ Sink = (*OTelSink)(nil)
