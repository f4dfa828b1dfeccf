package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tour-booking-console/internal/pkg/config"
	"tour-booking-console/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		fx.Annotate(NewTracerProvider, fx.As(new(trace.TracerProvider))),
	),
)

// NewTracerProvider installs the global tracer provider. Spans are exported
// over OTLP/gRPC only when an endpoint is configured.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.Tracing.ServiceName),
		)),
	}

	var conn *grpc.ClientConn
	if cfg.Tracing.OTLPEndpoint != "" {
		var err error
		conn, err = grpc.NewClient(cfg.Tracing.OTLPEndpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, errs.Wrap(err, "failed to create gRPC connection to collector")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			_ = conn.Close()
			return nil, errs.Wrap(err, "failed to create trace exporter")
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
		logger.Info("otlp trace export enabled",
			"endpoint", cfg.Tracing.OTLPEndpoint,
			"service", cfg.Tracing.ServiceName,
		)
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := tp.Shutdown(ctx)
			if conn != nil {
				if cerr := conn.Close(); err == nil {
					err = cerr
				}
			}
			return err
		},
	})
	return tp, nil
}
