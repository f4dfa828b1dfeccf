//go:build unit

package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tour-booking-console/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/fx/fxtest"
)

func TestNewTracerProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tp, err := NewTracerProvider(lc, cfg, logger)
	require.NoError(t, err)
	lc.RequireStart()

	assert.Same(t, tp, otel.GetTracerProvider(), "installed as the global provider")

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid(), "spans are recorded without an exporter")
	span.End()

	lc.RequireStop()

	_, after := tp.Tracer("test").Start(context.Background(), "after-stop")
	assert.False(t, after.SpanContext().IsValid(), "a shut down provider hands out no-op spans")
}
