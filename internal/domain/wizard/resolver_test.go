//go:build unit

package wizard_test

import (
	"testing"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"
	"tour-booking-console/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	pending := builder.Guests(2)
	insured := []booking.Guest{
		builder.NewGuestBuilder().Insured().BuildDomain(),
		builder.NewGuestBuilder().Insured().BuildDomain(),
	}

	testCases := []struct {
		name   string
		status booking.Status
		guests []booking.Guest
		stored wizard.Progress
		want   wizard.Resolution
	}{
		{
			name:   "success status is read only on step 3",
			status: booking.StatusSuccess,
			stored: wizard.Progress{CurrentStep: wizard.StepGuests, Completed: wizard.NewStepSet(wizard.StepReview)},
			want: wizard.Resolution{
				Mode:            wizard.ModeReadOnly,
				InitialStep:     wizard.StepConfirm,
				Completed:       wizard.AllSteps(),
				DiscardProgress: true,
			},
		},
		{
			name:   "rejected status is locked to step 1",
			status: booking.StatusRejected,
			stored: wizard.Progress{CurrentStep: wizard.StepConfirm, Completed: wizard.NewStepSet(wizard.StepReview, wizard.StepGuests)},
			want: wizard.Resolution{
				Mode:            wizard.ModeLockedToStep1,
				InitialStep:     wizard.StepReview,
				DiscardProgress: true,
			},
		},
		{
			name:   "fresh booking starts at step 1",
			status: booking.StatusWaitingForApproved,
			guests: pending,
			stored: wizard.EmptyProgress(),
			want:   wizard.Resolution{Mode: wizard.ModeActive, InitialStep: wizard.StepReview},
		},
		{
			name:   "stored step without completed step 1 falls back",
			status: booking.StatusWaitingForApproved,
			guests: insured,
			stored: wizard.Progress{CurrentStep: wizard.StepConfirm},
			want:   wizard.Resolution{Mode: wizard.ModeActive, InitialStep: wizard.StepReview},
		},
		{
			name:   "resume on step 2",
			status: booking.StatusWaitingForApproved,
			guests: pending,
			stored: wizard.Progress{CurrentStep: wizard.StepGuests, Completed: wizard.NewStepSet(wizard.StepReview)},
			want: wizard.Resolution{
				Mode:        wizard.ModeActive,
				InitialStep: wizard.StepGuests,
				Completed:   wizard.NewStepSet(wizard.StepReview),
			},
		},
		{
			name:   "step 3 without step 2 and pending guests lands on step 2",
			status: booking.StatusWaitingForApproved,
			guests: pending,
			stored: wizard.Progress{CurrentStep: wizard.StepConfirm, Completed: wizard.NewStepSet(wizard.StepReview)},
			want: wizard.Resolution{
				Mode:        wizard.ModeActive,
				InitialStep: wizard.StepGuests,
				Completed:   wizard.NewStepSet(wizard.StepReview),
			},
		},
		{
			name:   "step 3 trusted when every guest is insured",
			status: booking.StatusWaitingForApproved,
			guests: insured,
			stored: wizard.Progress{CurrentStep: wizard.StepConfirm, Completed: wizard.NewStepSet(wizard.StepReview)},
			want: wizard.Resolution{
				Mode:        wizard.ModeActive,
				InitialStep: wizard.StepConfirm,
				Completed:   wizard.NewStepSet(wizard.StepReview),
			},
		},
		{
			name:   "step 3 with both steps completed",
			status: booking.StatusPendingDepositPayment,
			guests: pending,
			stored: wizard.Progress{CurrentStep: wizard.StepConfirm, Completed: wizard.NewStepSet(wizard.StepReview, wizard.StepGuests)},
			want: wizard.Resolution{
				Mode:        wizard.ModeActive,
				InitialStep: wizard.StepConfirm,
				Completed:   wizard.NewStepSet(wizard.StepReview, wizard.StepGuests),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tc.status).MustBuild()

			got := wizard.Resolve(b, tc.guests, tc.stored)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Resolution mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusWaitingForApproved).MustBuild()
	guests := builder.Guests(3)
	stored := wizard.Progress{CurrentStep: wizard.StepConfirm, Completed: wizard.NewStepSet(wizard.StepReview)}

	first := wizard.Resolve(b, guests, stored)
	second := wizard.Resolve(b, guests, stored)

	assert.Equal(t, first, second)
}
