package oracle

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vimwizard/internal/cachemanager"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/tracing"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 30 * time.Minute
)

type levelRequest struct {
	n     int
	topic string
}

// Oracle serves levels and remarks. Tutorial levels come first; later levels are generated.
type Oracle struct {
	levels   LevelService
	dialogue DialogueService
	tutorial []level.Level
	topic    string
	timeout  time.Duration
	cacheTTL time.Duration
	tracer   trace.Tracer
	cache    *cachemanager.ReadThroughCache[string, level.Level, levelRequest]
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithTimeout bounds every service call. A non-positive d keeps DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Oracle) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithTopic sets the subject passed to the level service.
func WithTopic(topic string) Option {
	return func(o *Oracle) { o.topic = topic }
}

// WithTutorial replaces the built-in tutorial. An empty slice skips it.
func WithTutorial(levels []level.Level) Option {
	return func(o *Oracle) { o.tutorial = levels }
}

// WithTracer records a span around every service call.
func WithTracer(t trace.Tracer) Option {
	return func(o *Oracle) { o.tracer = t }
}

// WithCache keeps generated levels for ttl, restarted each time a level is revisited.
// A zero ttl disables caching.
func WithCache(cache cachemanager.CacheManager[string, level.Level], ttl time.Duration) Option {
	return func(o *Oracle) {
		o.cacheTTL = ttl
		if cache == nil {
			cache = cachemanager.NewInMemoryCacheManager[string, level.Level]("levels", ttl, cachemanager.DefaultCleanupInterval)
		}
		o.cache = cachemanager.NewReadThroughCache(cache, o.generate, ttl <= 0)
	}
}

// New returns an Oracle over the given services.
func New(levels LevelService, dialogue DialogueService, opts ...Option) *Oracle {
	o := &Oracle{
		levels:   levels,
		dialogue: dialogue,
		tutorial: level.Tutorial(),
		topic:    DefaultTopic,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cache == nil {
		WithCache(nil, 0)(o)
	}
	return o
}

// TutorialLen returns how many built-in levels precede generated ones.
func (o *Oracle) TutorialLen() int {
	return len(o.tutorial)
}

// Level returns the level at index (0-based). It always returns a playable level: when
// generation fails or yields an invalid level, the fallback level takes its place.
func (o *Oracle) Level(ctx context.Context, index int) level.Level {
	if index < len(o.tutorial) {
		return o.tutorial[index]
	}

	id := index + 1
	n := index - len(o.tutorial)
	key := fmt.Sprintf("%s:%d", o.topic, n)

	ctx, span := tracing.Start(ctx, o.tracer, tracing.SpanGenerateLevel,
		attribute.Int(tracing.AttrLevelID, id),
		attribute.String(tracing.AttrTopic, o.topic),
	)

	l, err := o.cache.GetWithRefresh(ctx, key, levelRequest{n: n, topic: o.topic}, o.cacheTTL)
	if err == nil {
		l = level.WithDefaults(l, id)
		err = l.Validate()
	}
	if err != nil {
		log.ErrorErr(log.CatOracle, "level generation failed, using fallback", err, "index", index, "topic", o.topic)
		span.AddEvent(tracing.EventFallbackUsed)
		span.SetAttributes(attribute.Bool(tracing.AttrFallback, true))
		tracing.End(span, err)
		return level.Fallback(id)
	}

	span.SetAttributes(attribute.String(tracing.AttrLevelTitle, l.Title))
	tracing.End(span, nil)
	log.Debug(log.CatOracle, "level ready", "index", index, "title", l.Title)
	return l
}

func (o *Oracle) generate(ctx context.Context, req levelRequest) (level.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type result struct {
		l   level.Level
		err error
	}
	done := make(chan result, 1)
	go func() {
		l, err := o.levels.GenerateLevel(ctx, req.n, req.topic)
		done <- result{l, err}
	}()

	select {
	case <-ctx.Done():
		return level.Level{}, fmt.Errorf("generating level %d: %w", req.n, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return level.Level{}, fmt.Errorf("generating level %d: %w", req.n, r.err)
		}
		return r.l, nil
	}
}

// Remark asks the dialogue service for a line. Failures yield FallbackRemark and an empty
// answer yields SilentRemark.
func (o *Oracle) Remark(ctx context.Context, situation string, emotion Emotion) string {
	ctx, span := tracing.Start(ctx, o.tracer, tracing.SpanRemark,
		attribute.String(tracing.AttrEmotion, string(emotion)),
	)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := o.dialogue.Remark(ctx, situation, emotion)
		done <- result{text, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		r.err = ctx.Err()
	case r = <-done:
	}

	if r.err != nil {
		log.ErrorErr(log.CatOracle, "dialogue failed, using fallback", r.err, "emotion", emotion)
		span.AddEvent(tracing.EventFallbackUsed)
		tracing.End(span, r.err)
		return FallbackRemark
	}
	tracing.End(span, nil)
	if r.text == "" {
		return SilentRemark
	}
	return r.text
}

// Invalidate drops cached levels, e.g. after the level pack changed.
func (o *Oracle) Invalidate(ctx context.Context) {
	if err := o.cache.Invalidate(ctx); err != nil {
		log.ErrorErr(log.CatCache, "failed to flush level cache", err)
	}
}
