package kvstore

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("tour-booking-console/internal/infra/kvstore")
