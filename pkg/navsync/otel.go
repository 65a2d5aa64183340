package navsync

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for wayfind spans.
const defaultTracerName = "wayfind"

// tracing holds the resolved tracer. A nil *tracing is valid and
// produces no spans.
type tracing struct {
	tracer trace.Tracer
}

// WithTracing enables OpenTelemetry spans for navigations and handler
// refreshes, using the global tracer provider. Configure the provider
// in your main() before navigating:
//
//	otel.SetTracerProvider(tp)
//	s := navsync.New(engine, loc, navsync.WithTracing())
//
// Spans emitted:
//   - wayfind.navigate: one per NavigateTo, with target and match point
//   - wayfind.refresh: one per dispatched handler refresh
func WithTracing() Option {
	return WithTracerName(defaultTracerName)
}

// WithTracerName enables tracing with a custom tracer name.
func WithTracerName(name string) Option {
	return func(s *Synchronizer) {
		s.tracing = &tracing{tracer: otel.Tracer(name)}
	}
}

func (t *tracing) startNavigate(ctx context.Context, target string, matchPoint int) (context.Context, trace.Span) {
	if t == nil {
		return ctx, nil
	}
	return t.tracer.Start(ctx, "wayfind.navigate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("wayfind.target", target),
			attribute.Int("wayfind.match_point", matchPoint),
		),
	)
}

func (t *tracing) startRefresh(ctx context.Context, handler string) (context.Context, trace.Span) {
	if t == nil {
		return ctx, nil
	}
	return t.tracer.Start(ctx, "wayfind.refresh",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("wayfind.handler", handler),
		),
	)
}

// endSpan records the outcome and ends the span. Nil spans are
// ignored.
func endSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
