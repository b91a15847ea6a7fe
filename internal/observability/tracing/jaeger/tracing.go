package jaeger

import (
	"context"

	cfg "github.com/veracourse/portal/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerlog "github.com/uber/jaeger-client-go/log"
	"go.uber.org/zap"
)

// Start installs the global tracer and blocks until ctx is cancelled,
// flushing buffered spans on the way out.
func Start(ctx context.Context, serviceName string, conf *cfg.JaegerConfig) {
	tracerCfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: float64(conf.Sampler.Param),
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := tracerCfg.NewTracer(
		jaegercfg.Logger(jaegerlog.NullLogger),
	)
	if err != nil {
		zap.L().Fatal("failed to initialize tracer", zap.Error(err))
	}
	opentracing.SetGlobalTracer(tracer)

	zap.L().Info("tracing started", zap.String("service", serviceName))
	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("failed to flush tracer", zap.Error(err))
	}
	zap.L().Info("tracing stopped")
}
