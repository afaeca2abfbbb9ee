package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled)
	require.Equal(t, ExporterFile, cfg.Exporter)
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	require.Equal(t, 1.0, cfg.SampleRate)
	require.Equal(t, "vimwizard", cfg.ServiceName)
	require.NoError(t, cfg.Validate(), "disabled config is always valid")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"file without path", Config{Enabled: true, Exporter: ExporterFile}, true},
		{"file with path", Config{Enabled: true, Exporter: ExporterFile, FilePath: "t.jsonl", SampleRate: 1}, false},
		{"unknown exporter", Config{Enabled: true, Exporter: "jaeger"}, true},
		{"sample rate too high", Config{Enabled: true, Exporter: ExporterNone, SampleRate: 2}, true},
		{"none", Config{Enabled: true, Exporter: ExporterNone}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	require.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "noop")
	require.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "spans.jsonl")

	p, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile, FilePath: path, SampleRate: 1})
	require.NoError(t, err)
	require.True(t, p.Enabled())

	ctx, span := Start(context.Background(), p.Tracer(), SpanGenerateLevel, attribute.Int(AttrLevelID, 4))
	require.NotEmpty(t, TraceID(ctx))
	End(span, nil)

	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var rec SpanRecord
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
	require.Equal(t, SpanGenerateLevel, rec.Name)
	require.Equal(t, "OK", rec.Status)
	require.EqualValues(t, 4, rec.Attributes[AttrLevelID])
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.Error(t, err)
}

func TestStart_NilTracer(t *testing.T) {
	ctx, span := Start(context.Background(), nil, "anything")
	require.Empty(t, TraceID(ctx))
	End(span, errors.New("ignored"))
}

func TestEnd_RecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := Start(context.Background(), tp.Tracer("test"), SpanRemark, attribute.String(AttrEmotion, "happy"))
	End(span, errors.New("boom"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, SpanRemark, ended[0].Name())
	require.Equal(t, "boom", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1, "RecordError adds an exception event")
}

func TestFileExporter_ShutdownTwice(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "t.jsonl"))
	require.NoError(t, err)

	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
	require.Error(t, exp.ExportSpans(context.Background(), nil))
}
