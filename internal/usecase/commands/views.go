package commands

import (
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"

	"github.com/google/uuid"
)

// WizardView is the renderable state of one wizard session.
type WizardView struct {
	Booking        *booking.Booking
	Guests         []booking.Guest
	Mode           wizard.Mode
	Step           wizard.Step
	Completed      []wizard.Step
	Clickable      []wizard.Step
	Pending        []wizard.InsuranceEdit
	UnsavedChanges bool
	Busy           bool
	LeavePending   bool
}

// Outcome tells the caller where to go after a terminal action. An empty
// Navigate with Back unset means "stay".
type Outcome struct {
	BookingID uuid.UUID
	Status    booking.Status
	Navigate  string
	Back      bool
	Delay     time.Duration
}

type LeaveKind string

const (
	LeaveClose LeaveKind = "close"
	LeaveBack  LeaveKind = "back"
	LeaveLink  LeaveKind = "link"
)

func (k LeaveKind) IsValid() bool {
	switch k {
	case LeaveClose, LeaveBack, LeaveLink:
		return true
	}
	return false
}

// LeaveIntent is a navigation the operator started while on the wizard.
type LeaveIntent struct {
	Kind LeaveKind
	Path string
}

type LeaveAction string

const (
	// LeaveProceed: navigate now, nothing to lose.
	LeaveProceed LeaveAction = "proceed"
	// LeaveWarn: let the browser show its native unload prompt.
	LeaveWarn LeaveAction = "warn"
	// LeaveConfirm: show the confirmation dialog; the intent is parked until
	// ConfirmLeave or CancelLeave.
	LeaveConfirm LeaveAction = "confirm"
)

type LeaveDecision struct {
	Action        LeaveAction
	RepushHistory bool
	Navigate      string
	Back          bool
}
