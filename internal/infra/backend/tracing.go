package backend

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("tour-booking-console/internal/infra/backend")
