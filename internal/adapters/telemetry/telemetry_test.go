package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/minish/internal/adapters/telemetry"
	"go.trai.ch/minish/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_Start(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(t.Context(), "lp")
	span.SetAttribute("argc", 1)
	span.SetAttribute("command", "lp")
	span.SetAttribute("exit_code", int64(0))
	span.SetAttribute("builtin", true)
	span.SetAttribute("argv", []string{"lp"})
	span.SetAttribute("other", 1.5)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lp", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int("argc", 1),
		attribute.String("command", "lp"),
		attribute.Int64("exit_code", 0),
		attribute.Bool("builtin", true),
		attribute.StringSlice("argv", []string{"lp"}),
		attribute.String("other", "1.5"),
	}, spans[0].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(t.Context(), "external")
	span.RecordError(errors.New("exec() failed"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "exec() failed", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestLogProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info(gomock.Cond(func(msg string) bool {
			return strings.HasPrefix(msg, "pwd finished in ")
		})),
		mockLogger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
			return strings.HasPrefix(msg, "external failed after ") && strings.HasSuffix(msg, ": boom")
		})),
	)

	tp := trace.NewTracerProvider(trace.WithSpanProcessor(telemetry.NewLogProcessor(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := tp.Tracer("test")

	_, ok := tracer.Start(t.Context(), "pwd")
	ok.End()

	_, failed := tracer.Start(t.Context(), "external")
	failed.SetStatus(codes.Error, "boom")
	failed.End()
}

func TestSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	shutdown := telemetry.Setup(mockLogger, true)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracer("test-tracer").Start(t.Context(), "cd")
	span.End()
}

func TestSetup_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	shutdown := telemetry.Setup(mockLogger, false)

	_, span := telemetry.NewOTelTracer("test-tracer").Start(t.Context(), "cd")
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}
