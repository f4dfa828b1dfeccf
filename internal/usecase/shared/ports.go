package shared

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/shared/ports.go -package=sharedmock

import (
	"context"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"

	"github.com/google/uuid"
)

// BookingBackend is the REST booking backend as seen by the workflow. The
// backend owns every booking; the console only requests transitions.
type BookingBackend interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetGuests(ctx context.Context, bookingID uuid.UUID) ([]booking.Guest, error)
	ChangeBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status, message string) (*booking.Booking, error)
	ChangeGuestInsuranceStatus(ctx context.Context, guestID uuid.UUID, status booking.InsuranceStatus) error
	CompanyConfirmTourCompletion(ctx context.Context, bookingID uuid.UUID) error
	GetTourCompletionStatus(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

// ProgressStore never reports errors; an unavailable store behaves as an
// empty one.
type ProgressStore interface {
	Load(ctx context.Context, bookingID uuid.UUID) wizard.Progress
	Save(ctx context.Context, bookingID uuid.UUID, p wizard.Progress)
	Clear(ctx context.Context, bookingID uuid.UUID)
}
