package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/infra"
	"tour-booking-console/internal/pkg/authctx"
	"tour-booking-console/internal/pkg/config"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// maxErrorBody bounds how much of a failed response ends up in logs.
const maxErrorBody = 512

// Client talks to the booking backend's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With("component", "booking_backend"),
	}
}

func (c *Client) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var dto bookingDTO
	if err := c.doJSON(ctx, "GetBooking", http.MethodGet, "/bookings/"+id.String(), nil, &dto); err != nil {
		return nil, err
	}
	return c.toBooking(dto)
}

func (c *Client) GetGuests(ctx context.Context, bookingID uuid.UUID) ([]booking.Guest, error) {
	var dtos []guestDTO
	if err := c.doJSON(ctx, "GetGuests", http.MethodGet, "/bookings/"+bookingID.String()+"/guests", nil, &dtos); err != nil {
		return nil, err
	}
	guests := make([]booking.Guest, 0, len(dtos))
	for _, d := range dtos {
		g, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapBackendErr(c.logger, infra.KindBadResponse, http.StatusOK, "invalid guest in response", err)
		}
		guests = append(guests, g)
	}
	return guests, nil
}

func (c *Client) ChangeBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status, message string) (*booking.Booking, error) {
	req := changeStatusRequest{Status: status.String(), Message: message}
	var dto bookingDTO
	if err := c.doJSON(ctx, "ChangeBookingStatus", http.MethodPut, "/bookings/"+id.String()+"/status", req, &dto); err != nil {
		return nil, err
	}
	// Some deployments answer with an empty body.
	if dto.ID == uuid.Nil {
		return c.GetBooking(ctx, id)
	}
	return c.toBooking(dto)
}

func (c *Client) ChangeGuestInsuranceStatus(ctx context.Context, guestID uuid.UUID, status booking.InsuranceStatus) error {
	req := insuranceStatusRequest{Status: string(status)}
	return c.doJSON(ctx, "ChangeGuestInsuranceStatus", http.MethodPut, "/guests/"+guestID.String()+"/insurance-status", req, nil)
}

func (c *Client) CompanyConfirmTourCompletion(ctx context.Context, bookingID uuid.UUID) error {
	return c.doJSON(ctx, "CompanyConfirmTourCompletion", http.MethodPost, "/bookings/"+bookingID.String()+"/completion/company-confirm", nil, nil)
}

func (c *Client) GetTourCompletionStatus(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var dto completionStatusDTO
	if err := c.doJSON(ctx, "GetTourCompletionStatus", http.MethodGet, "/bookings/"+bookingID.String()+"/completion", nil, &dto); err != nil {
		return false, err
	}
	return dto.Completed, nil
}

func (c *Client) toBooking(dto bookingDTO) (*booking.Booking, error) {
	b, err := dto.toDomain()
	if err != nil {
		return nil, infra.WrapBackendErr(c.logger, infra.KindBadResponse, http.StatusOK, "invalid booking in response", err)
	}
	return b, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, reqBody, respBody any) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	))
	defer span.End()

	err := c.do(ctx, method, path, reqBody, respBody)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return infra.WrapBackendErr(c.logger, infra.KindTransport, 0, "failed to encode request", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return infra.WrapBackendErr(c.logger, infra.KindTransport, 0, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := authctx.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapBackendErr(c.logger, infra.KindTransport, 0, method+" "+path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapBackendErr(c.logger, infra.KindTransport, resp.StatusCode, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return infra.WrapBackendErr(c.logger, kindForStatus(resp.StatusCode), resp.StatusCode, method+" "+path, statusError(resp.StatusCode, b))
	}

	if respBody != nil && len(bytes.TrimSpace(b)) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			return infra.WrapBackendErr(c.logger, infra.KindBadResponse, resp.StatusCode, "failed to decode response", err)
		}
	}
	return nil
}

func kindForStatus(status int) infra.BackendErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindUnauthorized
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500:
		return infra.KindTransport
	default:
		return infra.KindRejected
	}
}

func statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		return fmt.Errorf("status %d", status)
	}
	return fmt.Errorf("status %d: %s", status, msg)
}
