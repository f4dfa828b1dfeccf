package wizard

import (
	"errors"

	"tour-booking-console/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrTransitionNotAllowed = errors.New("wizard is not editable in its current mode")
	ErrWrongStep            = errors.New("action is not available on the current step")
	ErrStepNotReachable     = errors.New("step is not reachable yet")
	ErrInvalidStep          = errors.New("invalid wizard step")
	ErrMissingGuest         = errors.New("guest id is required")
)

// State is the wizard's single source of truth: mode, current step, the
// completed set and the staged insurance edits move together.
type State struct {
	mode      Mode
	step      Step
	completed StepSet
	pending   []InsuranceEdit
}

func NewState(r Resolution) State {
	step := r.InitialStep
	if !step.IsValid() {
		step = FirstStep
	}
	return State{
		mode:      r.Mode,
		step:      step,
		completed: r.Completed,
	}
}

func (s *State) Mode() Mode { return s.mode }
func (s *State) Step() Step { return s.step }
func (s *State) Completed() StepSet { return s.completed }
func (s *State) IsActive() bool { return s.mode == ModeActive }
func (s *State) PendingCount() int { return len(s.pending) }
func (s *State) Progress() Progress { return Progress{CurrentStep: s.step, Completed: s.completed} }
func (s *State) IsFinished() bool { return s.completed == AllSteps() }

func (s *State) Pending() []InsuranceEdit {
	out := make([]InsuranceEdit, len(s.pending))
	copy(out, s.pending)
	return out
}

// ApproveStep1 stages the approval; nothing is sent to the backend yet.
func (s *State) ApproveStep1() error {
	if err := s.requireStep(StepReview); err != nil {
		return err
	}
	s.completed = s.completed.Add(StepReview)
	s.step = StepGuests
	return nil
}

// StageInsurance records an edit for later; a second edit for the same
// guest replaces the first one in place.
func (s *State) StageInsurance(edit InsuranceEdit) error {
	if err := s.requireStep(StepGuests); err != nil {
		return err
	}
	if edit.GuestID == uuid.Nil {
		return ErrMissingGuest
	}
	for i := range s.pending {
		if s.pending[i].GuestID == edit.GuestID {
			s.pending[i].Status = edit.Status
			return nil
		}
	}
	s.pending = append(s.pending, edit)
	return nil
}

func (s *State) CompleteStep2() error {
	if err := s.requireStep(StepGuests); err != nil {
		return err
	}
	s.completed = s.completed.Add(StepGuests)
	s.step = StepConfirm
	return nil
}

func (s *State) Back() error {
	if !s.IsActive() {
		return ErrTransitionNotAllowed
	}
	if s.step == FirstStep {
		return ErrWrongStep
	}
	s.step--
	s.pending = nil
	return nil
}

// CanVisit reports whether a step indicator may be clicked: the current
// step, any completed step, or the step right after a completed current one.
func (s *State) CanVisit(step Step) bool {
	if !s.IsActive() || !step.IsValid() {
		return false
	}
	if step == s.step || s.completed.Has(step) {
		return true
	}
	return step == s.step+1 && s.completed.Has(s.step)
}

func (s *State) Clickable() []Step {
	out := make([]Step, 0, 3)
	for st := FirstStep; st <= LastStep; st++ {
		if s.CanVisit(st) {
			out = append(out, st)
		}
	}
	return out
}

func (s *State) GoTo(step Step) error {
	if !step.IsValid() {
		return ErrInvalidStep
	}
	if !s.IsActive() {
		return ErrTransitionNotAllowed
	}
	if !s.CanVisit(step) {
		return ErrStepNotReachable
	}
	if step < s.step {
		s.pending = nil
	}
	s.step = step
	return nil
}

// ReadyToDecide checks the step 1 decisions (reject, request update) are
// offered.
func (s *State) ReadyToDecide() error {
	return s.requireStep(StepReview)
}

// ReadyToFinish checks the finish action is offered.
func (s *State) ReadyToFinish() error {
	return s.requireStep(StepConfirm)
}

func (s *State) MarkFinished() {
	s.completed = AllSteps()
	s.step = StepConfirm
	s.pending = nil
}

// HasUnsavedChanges is the navigation guard: an active wizard with at least
// one completed step, unless the booking already waits for the tour start.
func (s *State) HasUnsavedChanges(status booking.Status) bool {
	return s.IsActive() && s.completed.Len() > 0 && !status.IsPendingStart()
}

func (s *State) requireStep(step Step) error {
	if !s.IsActive() {
		return ErrTransitionNotAllowed
	}
	if s.step != step {
		return ErrWrongStep
	}
	return nil
}
