//go:build unit

package backend_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/infra"
	"tour-booking-console/internal/infra/backend"
	"tour-booking-console/internal/pkg/authctx"
	"tour-booking-console/internal/pkg/config"
	"tour-booking-console/internal/testutil/builder"
	"tour-booking-console/internal/testutil/fakebackend"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newClient(t *testing.T) (*backend.Client, *fakebackend.Server) {
	t.Helper()
	srv := fakebackend.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return backend.NewClient(config.BackendConfig{BaseURL: srv.URL + "/", Timeout: time.Second}, logger), srv
}

func TestClient_GetBooking(t *testing.T) {
	c, srv := newClient(t)
	ctx := authctx.WithToken(context.Background(), "operator-token")

	auto := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	bld := builder.NewBookingBuilder().
		WithStatus(booking.StatusSuccessWaitForConfirmed).
		WithVoucher("SUMMER", 800_000, 240_000).
		With(func(b *builder.BookingBuilder) {
			b.AutoConfirmedDate = &auto
			b.CompanyConfirmed = true
		})
	srv.PutBooking(bld.BuildBackendJSON())

	got, err := c.GetBooking(ctx, bld.ID)

	require.NoError(t, err)
	assert.Equal(t, bld.ID, got.ID())
	assert.Equal(t, booking.StatusSuccessWaitForConfirmed, got.Status())
	assert.Equal(t, "SUMMER", got.VoucherCode())
	require.NotNil(t, got.Amounts().DiscountedTotal)
	assert.True(t, got.Amounts().DiscountedTotal.Equal(decimal.NewFromInt(800_000)))
	assert.True(t, got.Completion().CompanyConfirmed)
	require.NotNil(t, got.Completion().AutoConfirmedDate)
	assert.True(t, auto.Equal(*got.Completion().AutoConfirmedDate))

	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "operator-token", calls[0].Token, "the operator token is forwarded")
}

func TestClient_GetGuests(t *testing.T) {
	c, srv := newClient(t)
	bld := builder.NewBookingBuilder()
	g1 := builder.NewGuestBuilder().Insured()
	g2 := builder.NewGuestBuilder().With(func(g *builder.GuestBuilder) { g.Type = booking.GuestChild })
	srv.PutBooking(bld.BuildBackendJSON(), g1.BuildBackendJSON(), g2.BuildBackendJSON())

	guests, err := c.GetGuests(context.Background(), bld.ID)

	require.NoError(t, err)
	require.Len(t, guests, 2)
	assert.Equal(t, g1.ID, guests[0].ID)
	assert.True(t, guests[0].Insurance.IsSuccess())
	assert.Equal(t, booking.GuestChild, guests[1].Type)
	assert.True(t, guests[1].Insurance.IsPending())
}

func TestClient_Writes(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()
	bld := builder.NewBookingBuilder().WithStatus(booking.StatusSuccessWaitForConfirmed)
	guest := builder.NewGuestBuilder()
	srv.PutBooking(bld.BuildBackendJSON(), guest.BuildBackendJSON())

	updated, err := c.ChangeBookingStatus(ctx, bld.ID, booking.StatusUnderComplaint, "guide never showed up")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusUnderComplaint, updated.Status())

	require.NoError(t, c.ChangeGuestInsuranceStatus(ctx, guest.ID, booking.InsuranceSuccess))
	assert.Equal(t, "SUCCESS", srv.Guest(bld.ID.String(), guest.ID.String())["insuranceStatus"])

	require.NoError(t, c.CompanyConfirmTourCompletion(ctx, bld.ID))
	done, err := c.GetTourCompletionStatus(ctx, bld.ID)
	require.NoError(t, err)
	assert.False(t, done, "the traveller has not confirmed yet")

	writes := srv.Writes()
	require.Len(t, writes, 3)
	assert.Equal(t, map[string]any{"status": "BOOKING_UNDER_COMPLAINT", "message": "guide never showed up"}, writes[0].Body)
	assert.Equal(t, http.MethodPut, writes[1].Method)
	assert.Equal(t, "/bookings/"+bld.ID.String()+"/completion/company-confirm", writes[2].Path)
}

func TestClient_ErrorKinds(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		kind   infra.BackendErrorKind
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, kind: infra.KindUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, kind: infra.KindUnauthorized},
		{name: "not found", status: http.StatusNotFound, kind: infra.KindNotFound},
		{name: "conflict", status: http.StatusConflict, kind: infra.KindRejected},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, kind: infra.KindRejected},
		{name: "server error", status: http.StatusBadGateway, kind: infra.KindTransport},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newClient(t)
			id := uuid.New()
			srv.FailOn(http.MethodGet, "/bookings/"+id.String(), tc.status)

			_, err := c.GetBooking(context.Background(), id)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.kind), "expected kind [%v] but got (%v)", tc.kind, err)
			var be infra.BackendError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tc.status, be.Status)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := backend.NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, logger)

	_, err := c.GetGuests(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindTransport))
}

func TestClient_BadPayload(t *testing.T) {
	c, srv := newClient(t)
	bld := builder.NewBookingBuilder()
	payload := bld.BuildBackendJSON()
	payload["status"] = "NOT_A_STATUS"
	srv.PutBooking(payload)

	_, err := c.GetBooking(context.Background(), bld.ID)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindBadResponse))
}

func TestClient_PropagatesTraceContext(t *testing.T) {
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	c, srv := newClient(t)
	bld := builder.NewBookingBuilder()
	srv.PutBooking(bld.BuildBackendJSON())

	ctx, parent := tp.Tracer("test").Start(context.Background(), "request")
	_, err := c.GetBooking(ctx, bld.ID)
	parent.End()

	require.NoError(t, err)
	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].TraceParent, parent.SpanContext().TraceID().String())

	var clientSpan sdktrace.ReadOnlySpan
	for _, s := range spans.Ended() {
		if s.Name() == "GetBooking" {
			clientSpan = s
		}
	}
	require.NotNil(t, clientSpan, "the backend call gets its own span")
	assert.Equal(t, parent.SpanContext().TraceID(), clientSpan.SpanContext().TraceID())
	assert.Equal(t, parent.SpanContext().SpanID(), clientSpan.Parent().SpanID())
}
