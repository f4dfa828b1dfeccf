package wizard

import "tour-booking-console/internal/domain/booking"

type Resolution struct {
	Mode            Mode
	InitialStep     Step
	Completed       StepSet
	DiscardProgress bool
}

// Resolve maps a booking snapshot and its stored progress to the wizard mode
// and starting step. It is pure: identical inputs give identical output.
func Resolve(b *booking.Booking, guests []booking.Guest, stored Progress) Resolution {
	switch b.Status() {
	case booking.StatusSuccess:
		return Resolution{
			Mode:            ModeReadOnly,
			InitialStep:     StepConfirm,
			Completed:       AllSteps(),
			DiscardProgress: true,
		}
	case booking.StatusRejected:
		return Resolution{
			Mode:            ModeLockedToStep1,
			InitialStep:     StepReview,
			DiscardProgress: true,
		}
	}

	return Resolution{
		Mode:        ModeActive,
		InitialStep: resumeStep(stored, guests),
		Completed:   stored.Completed,
	}
}

// resumeStep trusts stored progress only as far as it stays consistent.
// Guests that all carry a final insurance status count as a server-side
// signal that step 2 was done, even when local storage lost that mark.
func resumeStep(stored Progress, guests []booking.Guest) Step {
	if !stored.Completed.Has(StepReview) {
		return StepReview
	}
	if stored.CurrentStep >= StepConfirm &&
		(stored.Completed.Has(StepGuests) || booking.AllInsured(guests)) {
		return StepConfirm
	}
	if stored.CurrentStep >= StepGuests {
		return StepGuests
	}
	return StepReview
}
