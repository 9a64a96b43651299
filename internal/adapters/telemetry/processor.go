package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/minish/internal/core/ports"
)

// LogProcessor implements sdktrace.SpanProcessor by logging every finished span.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and its duration.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	if s.Status().Code == codes.Error {
		p.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, s.Status().Description))
		return
	}
	p.logger.Info(fmt.Sprintf("%s finished in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(_ context.Context) error {
	return nil
}

// Setup installs the global tracer provider. With trace enabled, finished spans are
// logged through logger; otherwise they are dropped. The returned function shuts
// the provider down.
func Setup(logger ports.Logger, trace bool) func(context.Context) error {
	var opts []sdktrace.TracerProviderOption
	if trace {
		opts = append(opts, sdktrace.WithSpanProcessor(NewLogProcessor(logger)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
