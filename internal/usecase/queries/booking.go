package queries

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/usecase/booking.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/pkg/clock"
	"tour-booking-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentPreview shows what finishing the wizard would request. Exactly one
// of NextStatus and Shortfall is set.
type PaymentPreview struct {
	VoucherApplied   bool
	EffectiveTotal   decimal.Decimal
	EffectiveDeposit decimal.Decimal
	Paid             decimal.Decimal
	NextStatus       *booking.Status
	Shortfall        *booking.InsufficientPaymentError
}

type CompletionSummary struct {
	Completed        bool
	CanConfirm       bool
	AutoConfirmDate  time.Time
	AutoConfirmLocal bool
}

type BookingSummaryView struct {
	Booking    *booking.Booking
	Guests     []booking.Guest
	AllInsured bool
	Payment    PaymentPreview
	Completion CompletionSummary
}

type BookingQueries interface {
	GetSummary(ctx context.Context, id uuid.UUID) (*BookingSummaryView, error)
}

type bookingQueriesImpl struct {
	backend shared.BookingBackend
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingQueries(backend shared.BookingBackend, clk clock.Clock, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{backend: backend, clock: clk, logger: logger}
}

func (q *bookingQueriesImpl) GetSummary(ctx context.Context, id uuid.UUID) (*BookingSummaryView, error) {
	b, err := q.backend.GetBooking(ctx, id)
	if err != nil {
		return nil, shared.MarkBackendErr(err, "failed to load booking")
	}
	guests, err := q.backend.GetGuests(ctx, id)
	if err != nil {
		return nil, shared.MarkBackendErr(err, "failed to load guests")
	}

	return &BookingSummaryView{
		Booking:    b,
		Guests:     guests,
		AllInsured: booking.AllInsured(guests),
		Payment:    previewPayment(b),
		Completion: q.summarizeCompletion(b),
	}, nil
}

func previewPayment(b *booking.Booking) PaymentPreview {
	cls, err := booking.ClassifyPayment(b)
	p := PaymentPreview{
		VoucherApplied:   cls.VoucherApplied,
		EffectiveTotal:   cls.EffectiveTotal,
		EffectiveDeposit: cls.EffectiveDeposit,
		Paid:             cls.Paid,
	}
	var shortfall *booking.InsufficientPaymentError
	if errors.As(err, &shortfall) {
		p.Shortfall = shortfall
		return p
	}
	next := cls.Next
	p.NextStatus = &next
	return p
}

func (q *bookingQueriesImpl) summarizeCompletion(b *booking.Booking) CompletionSummary {
	state := b.CompletionState()
	deadline, derived := state.AutoConfirmDeadline()
	return CompletionSummary{
		Completed:        state.IsCompleted(),
		CanConfirm:       state.CanConfirm(clock.Today(q.clock)),
		AutoConfirmDate:  deadline,
		AutoConfirmLocal: derived,
	}
}
