package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used for every span.
const TracerName = "github.com/matzehuels/schematic"

// StartSpan starts a span for a pipeline stage. The returned function ends
// the span, recording err on it when non-nil.
//
//	ctx, end := observability.StartSpan(ctx, "layout.solve")
//	p, err := layout.Solve(n, opts)
//	end(err)
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := otel.Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// TracingCacheHooks records cache events on the span in the context.
type TracingCacheHooks struct{}

func (TracingCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	trace.SpanFromContext(ctx).AddEvent("cache.hit", trace.WithAttributes(attribute.String("cache.key_type", keyType)))
}

func (TracingCacheHooks) OnCacheMiss(ctx context.Context, keyType string) {
	trace.SpanFromContext(ctx).AddEvent("cache.miss", trace.WithAttributes(attribute.String("cache.key_type", keyType)))
}

func (TracingCacheHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	trace.SpanFromContext(ctx).AddEvent("cache.set", trace.WithAttributes(
		attribute.String("cache.key_type", keyType),
		attribute.Int("cache.size", size),
	))
}

var _ CacheHooks = TracingCacheHooks{}
