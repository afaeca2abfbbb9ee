package oracle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/mocks"
	"github.com/zjrosen/vimwizard/internal/oracle"
	"github.com/zjrosen/vimwizard/internal/tracing"
)

func generated(title string) level.Level {
	return level.Level{
		Title: title,
		Start: []string{"Raise the dedad."},
		Goal:  level.ExactText{Lines: []string{"Raise the dead."}},
	}
}

func TestOracle_TutorialFirst(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	o := oracle.New(levels, mocks.NewMockDialogueService(t))

	tutorial := level.Tutorial()
	require.Equal(t, len(tutorial), o.TutorialLen())
	for i, want := range tutorial {
		got := o.Level(context.Background(), i)
		require.Equal(t, want.Title, got.Title)
	}
	// No GenerateLevel expectation: the mock fails the test if the service is called.
}

func TestOracle_GeneratedLevelGetsDefaults(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 0, oracle.DefaultTopic).Return(level.Level{
		Start: []string{"ab"},
		Goal:  level.ExactText{Lines: []string{"a"}},
	}, nil)

	o := oracle.New(levels, mocks.NewMockDialogueService(t))
	got := o.Level(context.Background(), o.TutorialLen())

	require.Equal(t, o.TutorialLen()+1, got.ID)
	require.Equal(t, level.DefaultDescription, got.Description)
	require.Equal(t, level.DefaultAllowedKeys, got.AllowedKeys)
	require.Equal(t, []string{level.DefaultHint}, got.Hints)
}

func TestOracle_FallbackOnError(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 0, "golems").Return(level.Level{}, errors.New("boom"))

	o := oracle.New(levels, mocks.NewMockDialogueService(t),
		oracle.WithTutorial(nil),
		oracle.WithTopic("golems"),
	)
	got := o.Level(context.Background(), 0)

	require.Equal(t, level.Fallback(1), got)
}

func TestOracle_FallbackOnInvalidLevel(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	// Already solved at the start.
	levels.EXPECT().GenerateLevel(mock.Anything, 0, mock.Anything).Return(level.Level{
		Start: []string{"done"},
		Goal:  level.ExactText{Lines: []string{"done"}},
	}, nil)

	o := oracle.New(levels, mocks.NewMockDialogueService(t), oracle.WithTutorial(nil))
	require.Equal(t, level.Fallback(1), o.Level(context.Background(), 0))
}

func TestOracle_FallbackOnTimeout(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 0, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int, _ string) (level.Level, error) {
			<-ctx.Done()
			return level.Level{}, ctx.Err()
		})

	o := oracle.New(levels, mocks.NewMockDialogueService(t),
		oracle.WithTutorial(nil),
		oracle.WithTimeout(10*time.Millisecond),
	)
	require.Equal(t, level.Fallback(1), o.Level(context.Background(), 0))
}

func TestOracle_CachesGeneratedLevels(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 0, mock.Anything).Return(generated("once"), nil).Once()

	o := oracle.New(levels, mocks.NewMockDialogueService(t),
		oracle.WithTutorial(nil),
		oracle.WithCache(nil, time.Minute),
	)
	require.Equal(t, "once", o.Level(context.Background(), 0).Title)
	require.Equal(t, "once", o.Level(context.Background(), 0).Title)
}

func TestOracle_CacheHitRefreshesTTL(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	cache := mocks.NewMockCacheManager[string, level.Level](t)
	cache.EXPECT().GetWithRefresh(mock.Anything, oracle.DefaultTopic+":0", time.Minute).Return(generated("kept"), true).Once()

	o := oracle.New(levels, mocks.NewMockDialogueService(t),
		oracle.WithTutorial(nil),
		oracle.WithCache(cache, time.Minute),
	)
	require.Equal(t, "kept", o.Level(context.Background(), 0).Title)
}

func TestOracle_InvalidateRegenerates(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 0, mock.Anything).Return(generated("first"), nil).Once()
	levels.EXPECT().GenerateLevel(mock.Anything, 0, mock.Anything).Return(generated("second"), nil).Once()

	o := oracle.New(levels, mocks.NewMockDialogueService(t),
		oracle.WithTutorial(nil),
		oracle.WithCache(nil, time.Minute),
	)
	require.Equal(t, "first", o.Level(context.Background(), 0).Title)
	o.Invalidate(context.Background())
	require.Equal(t, "second", o.Level(context.Background(), 0).Title)
}

func TestOracle_NoCacheCallsEveryTime(t *testing.T) {
	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 1, mock.Anything).Return(generated("again"), nil).Twice()

	o := oracle.New(levels, mocks.NewMockDialogueService(t), oracle.WithTutorial(nil))
	o.Level(context.Background(), 1)
	o.Level(context.Background(), 1)
}

func TestOracle_Remark(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
		want string
	}{
		{name: "passes text through", text: "Well cast.", want: "Well cast."},
		{name: "error yields fallback", err: errors.New("offline"), want: oracle.FallbackRemark},
		{name: "empty yields silence", text: "", want: oracle.SilentRemark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialogue := mocks.NewMockDialogueService(t)
			dialogue.EXPECT().Remark(mock.Anything, "won", oracle.Happy).Return(tt.text, tt.err)

			o := oracle.New(mocks.NewMockLevelService(t), dialogue)
			require.Equal(t, tt.want, o.Remark(context.Background(), "won", oracle.Happy))
		})
	}
}

func TestOracle_RemarkTimeout(t *testing.T) {
	dialogue := mocks.NewMockDialogueService(t)
	dialogue.EXPECT().Remark(mock.Anything, mock.Anything, oracle.Neutral).
		RunAndReturn(func(ctx context.Context, _ string, _ oracle.Emotion) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	o := oracle.New(mocks.NewMockLevelService(t), dialogue, oracle.WithTimeout(10*time.Millisecond))
	require.Equal(t, oracle.FallbackRemark, o.Remark(context.Background(), "", oracle.Neutral))
}

func TestOracle_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	levels := mocks.NewMockLevelService(t)
	levels.EXPECT().GenerateLevel(mock.Anything, 0, mock.Anything).Return(level.Level{}, errors.New("boom"))
	dialogue := mocks.NewMockDialogueService(t)
	dialogue.EXPECT().Remark(mock.Anything, mock.Anything, oracle.Casting).Return("Behold.", nil)

	o := oracle.New(levels, dialogue,
		oracle.WithTutorial(nil),
		oracle.WithTracer(tp.Tracer("test")),
	)
	o.Level(context.Background(), 0)
	o.Remark(context.Background(), "summoning", oracle.Casting)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	gen := spans[0]
	require.Equal(t, tracing.SpanGenerateLevel, gen.Name())
	require.Len(t, gen.Events(), 2, "error event plus fallback event")
	var names []string
	for _, e := range gen.Events() {
		names = append(names, e.Name)
	}
	require.Contains(t, names, tracing.EventFallbackUsed)

	require.Equal(t, tracing.SpanRemark, spans[1].Name())
}
