package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span names.
const (
	SpanGenerateLevel = "oracle.generate_level"
	SpanRemark        = "oracle.remark"
	SpanJournalBegin  = "journal.begin"
	SpanJournalReplay = "journal.replay"
)

// Attribute keys.
const (
	AttrLevelID    = "level.id"
	AttrLevelTitle = "level.title"
	AttrTopic      = "level.topic"
	AttrEmotion    = "dialogue.emotion"
	AttrFallback   = "oracle.fallback"
	AttrCacheHit   = "cache.hit"
	AttrAttemptID  = "journal.attempt_id"
	AttrKeystrokes = "journal.keystrokes"
)

// Event names.
const (
	EventFallbackUsed = "fallback.used"
	EventCacheHit     = "cache.hit"
)

// Start opens an internal span. A nil tracer yields a no-op span so callers never branch.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, noop.Span{}
	}
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// End records err on the span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// TraceID returns the trace ID of the span in ctx, or "" when there is none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
