package wizard

import (
	"tour-booking-console/internal/domain/booking"

	"github.com/google/uuid"
)

type Step int

const (
	StepReview  Step = 1
	StepGuests  Step = 2
	StepConfirm Step = 3
)

const (
	FirstStep = StepReview
	LastStep  = StepConfirm
)

func (s Step) IsValid() bool {
	return s >= FirstStep && s <= LastStep
}

type Mode string

const (
	ModeActive        Mode = "active"
	ModeReadOnly      Mode = "read_only"
	ModeLockedToStep1 Mode = "locked_to_step1"
)

func (m Mode) String() string {
	return string(m)
}

// StepSet is the set of explicitly completed steps.
type StepSet uint8

func NewStepSet(steps ...Step) StepSet {
	var s StepSet
	for _, st := range steps {
		s = s.Add(st)
	}
	return s
}

func AllSteps() StepSet {
	return NewStepSet(StepReview, StepGuests, StepConfirm)
}

func (s StepSet) Has(step Step) bool {
	if !step.IsValid() {
		return false
	}
	return s&(1<<uint(step)) != 0
}

func (s StepSet) Add(step Step) StepSet {
	if !step.IsValid() {
		return s
	}
	return s | 1<<uint(step)
}

func (s StepSet) Len() int {
	return len(s.Steps())
}

func (s StepSet) Steps() []Step {
	out := make([]Step, 0, 3)
	for st := FirstStep; st <= LastStep; st++ {
		if s.Has(st) {
			out = append(out, st)
		}
	}
	return out
}

type Progress struct {
	CurrentStep Step
	Completed   StepSet
}

func EmptyProgress() Progress {
	return Progress{CurrentStep: FirstStep}
}

type InsuranceEdit struct {
	GuestID uuid.UUID
	Status  booking.InsuranceStatus
}
