package commands

//go:generate mockgen -source=wizard.go -destination=../../testutil/mock/usecase/wizard.go -package=usecasemock

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"
	"tour-booking-console/internal/pkg/clock"
	"tour-booking-console/internal/pkg/config"
	"tour-booking-console/internal/pkg/errs"
	"tour-booking-console/internal/usecase/shared"

	"github.com/google/uuid"
)

type WizardCommands interface {
	Enter(ctx context.Context, id uuid.UUID) (*WizardView, error)
	View(id uuid.UUID) (*WizardView, error)
	ApproveStep1(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*Outcome, error)
	RequestUpdate(ctx context.Context, id uuid.UUID, message string) (*Outcome, error)
	StageInsurance(ctx context.Context, id, guestID uuid.UUID, status string) (*WizardView, error)
	CompleteStep2(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Back(ctx context.Context, id uuid.UUID) (*WizardView, error)
	GoTo(ctx context.Context, id uuid.UUID, step wizard.Step) (*WizardView, error)
	Finish(ctx context.Context, id uuid.UUID) (*Outcome, error)
	UnsavedChanges(id uuid.UUID) (bool, error)
	RequestLeave(ctx context.Context, id uuid.UUID, intent LeaveIntent) (*LeaveDecision, error)
	ConfirmLeave(ctx context.Context, id uuid.UUID) (*Outcome, error)
	CancelLeave(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Close(id uuid.UUID) error
	Completion(ctx context.Context, id uuid.UUID) (*CompletionView, error)
	ConfirmCompletion(ctx context.Context, id uuid.UUID) (*CompletionView, error)
	FileComplaint(ctx context.Context, id uuid.UUID, message string) (*WizardView, error)
	Shutdown()
}

type wizardCommandsImpl struct {
	backend  shared.BookingBackend
	progress shared.ProgressStore
	workflow config.WorkflowConfig
	clock    clock.Clock
	logger   *slog.Logger
	sessions *registry
}

func NewWizardCommands(
	backend shared.BookingBackend,
	progress shared.ProgressStore,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) WizardCommands {
	return &wizardCommandsImpl{
		backend:  backend,
		progress: progress,
		workflow: cfg.Workflow,
		clock:    clk,
		logger:   logger.With("component", "wizard"),
		sessions: newRegistry(),
	}
}

// Enter opens (or reopens) the wizard for a booking. A session already open
// for the same booking is replaced; its in-flight results are dropped.
func (w *wizardCommandsImpl) Enter(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	b, err := w.backend.GetBooking(ctx, id)
	if err != nil {
		return nil, shared.MarkBackendErr(err, "failed to load booking")
	}
	guests, err := w.backend.GetGuests(ctx, id)
	if err != nil {
		return nil, shared.MarkBackendErr(err, "failed to load guests")
	}

	stored := w.progress.Load(ctx, id)
	res := wizard.Resolve(b, guests, stored)
	if res.DiscardProgress {
		w.progress.Clear(ctx, id)
	}

	s := &session{
		booking: b,
		guests:  guests,
		state:   wizard.NewState(res),
		tracker: NewCompletionTracker(w.backend, b, w.workflow.CompletionPollInterval, w.clock, w.logger),
	}
	if s.state.IsActive() {
		w.progress.Save(ctx, id, s.state.Progress())
	}

	old := w.sessions.put(id, s)
	stopTracker(old)
	s.tracker.Start(ctx)

	w.logger.Info("wizard entered",
		"booking_id", id,
		"status", b.Status(),
		"mode", res.Mode,
		"step", int(res.InitialStep),
	)

	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()
	return s.view(), nil
}

func (w *wizardCommandsImpl) View(id uuid.UUID) (*WizardView, error) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()
	s, ok := w.sessions.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.view(), nil
}

func (w *wizardCommandsImpl) ApproveStep1(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return w.transition(ctx, id, true, func(s *session) error {
		return s.state.ApproveStep1()
	})
}

func (w *wizardCommandsImpl) StageInsurance(ctx context.Context, id, guestID uuid.UUID, status string) (*WizardView, error) {
	normalized := booking.InsuranceStatus(strings.ToUpper(strings.TrimSpace(status)))
	if normalized == "" {
		return nil, errs.Mark(ErrInvalidInsurance, errs.ErrValidation)
	}
	return w.transition(ctx, id, false, func(s *session) error {
		if _, ok := booking.FindGuest(s.guests, guestID); !ok {
			return errs.Mark(ErrUnknownGuest, errs.ErrGuestNotFound)
		}
		return s.state.StageInsurance(wizard.InsuranceEdit{GuestID: guestID, Status: normalized})
	})
}

func (w *wizardCommandsImpl) CompleteStep2(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return w.transition(ctx, id, true, func(s *session) error {
		return s.state.CompleteStep2()
	})
}

func (w *wizardCommandsImpl) Back(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return w.transition(ctx, id, true, func(s *session) error {
		return s.state.Back()
	})
}

func (w *wizardCommandsImpl) GoTo(ctx context.Context, id uuid.UUID, step wizard.Step) (*WizardView, error) {
	return w.transition(ctx, id, true, func(s *session) error {
		return s.state.GoTo(step)
	})
}

// transition applies a local state change. Progress is written under the
// registry lock so saves for one booking land in order.
func (w *wizardCommandsImpl) transition(ctx context.Context, id uuid.UUID, persist bool, fn func(s *session) error) (*WizardView, error) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()

	s, ok := w.sessions.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.busy {
		return nil, ErrActionInFlight
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if persist {
		w.progress.Save(ctx, id, s.state.Progress())
	}
	return s.view(), nil
}

func (w *wizardCommandsImpl) Reject(ctx context.Context, id uuid.UUID, reason string) (*Outcome, error) {
	note, err := wizard.NewRejectionReason(reason)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return w.decide(ctx, id, booking.StatusRejected, note, true)
}

func (w *wizardCommandsImpl) RequestUpdate(ctx context.Context, id uuid.UUID, message string) (*Outcome, error) {
	note, err := wizard.NewUpdateMessage(message)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return w.decide(ctx, id, booking.StatusWaitingForUpdate, note, false)
}

// decide sends a step 1 decision and ends the session on success.
func (w *wizardCommandsImpl) decide(ctx context.Context, id uuid.UUID, status booking.Status, note wizard.Note, clearProgress bool) (*Outcome, error) {
	epoch, err := w.begin(id, func(s *session) error {
		return s.state.ReadyToDecide()
	})
	if err != nil {
		return nil, err
	}

	updated, err := w.backend.ChangeBookingStatus(ctx, id, status, note.String())
	if err != nil {
		w.release(id, epoch)
		return nil, shared.MarkBackendErr(err, "failed to change booking status")
	}

	closed, err := w.complete(id, epoch, func(*session) bool { return true })
	if err != nil {
		return nil, err
	}
	stopTracker(closed)
	if clearProgress {
		w.progress.Clear(ctx, id)
	}

	w.logger.Info("booking status changed", "booking_id", id, "status", updated.Status())
	return &Outcome{
		BookingID: id,
		Status:    updated.Status(),
		Navigate:  w.workflow.BookingsPath,
	}, nil
}

// Finish commits the wizard: staged insurance edits first, one request each
// and in order, then the status derived from the payments. A failing edit
// stops everything before the status request and keeps the edits staged.
func (w *wizardCommandsImpl) Finish(ctx context.Context, id uuid.UUID) (*Outcome, error) {
	var (
		b       *booking.Booking
		pending []wizard.InsuranceEdit
		noop    bool
	)
	epoch, err := w.begin(id, func(s *session) error {
		if s.booking.Status().IsApproved() {
			noop = true
			return nil
		}
		if err := s.state.ReadyToFinish(); err != nil {
			return err
		}
		b = s.booking
		pending = s.state.Pending()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if noop {
		w.release(id, epoch)
		return &Outcome{BookingID: id, Navigate: w.workflow.BookingsPath}, nil
	}

	for i, edit := range pending {
		if err := w.backend.ChangeGuestInsuranceStatus(ctx, edit.GuestID, edit.Status); err != nil {
			w.release(id, epoch)
			w.logger.Warn("insurance flush stopped",
				"booking_id", id,
				"guest_id", edit.GuestID,
				"applied", i,
				"total", len(pending),
			)
			return nil, &BatchFlushError{
				Total:     len(pending),
				Attempted: i + 1,
				Succeeded: i,
				Err:       shared.MarkGuestBackendErr(err, "failed to change insurance status"),
			}
		}
	}

	cls, err := booking.ClassifyPayment(b)
	if err != nil {
		w.release(id, epoch)
		return nil, err
	}

	updated, err := w.backend.ChangeBookingStatus(ctx, id, cls.Next, "")
	if err != nil {
		w.release(id, epoch)
		return nil, shared.MarkBackendErr(err, "failed to change booking status")
	}

	closed, err := w.complete(id, epoch, func(s *session) bool {
		s.state.MarkFinished()
		s.booking = updated
		return true
	})
	if err != nil {
		return nil, err
	}
	stopTracker(closed)
	w.progress.Clear(ctx, id)

	w.logger.Info("booking approved",
		"booking_id", id,
		"status", updated.Status(),
		"voucher_applied", cls.VoucherApplied,
		"insurance_updates", len(pending),
	)
	return &Outcome{
		BookingID: id,
		Status:    updated.Status(),
		Navigate:  w.workflow.BookingsPath,
		Delay:     w.workflow.SuccessDisplayDelay,
	}, nil
}

func (w *wizardCommandsImpl) UnsavedChanges(id uuid.UUID) (bool, error) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()
	s, ok := w.sessions.sessions[id]
	if !ok {
		return false, ErrSessionNotFound
	}
	return s.state.HasUnsavedChanges(s.booking.Status()), nil
}

func (w *wizardCommandsImpl) RequestLeave(_ context.Context, id uuid.UUID, intent LeaveIntent) (*LeaveDecision, error) {
	if !intent.Kind.IsValid() {
		return nil, errs.Mark(errs.New("unknown leave kind "+string(intent.Kind)), errs.ErrValidation)
	}

	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()
	s, ok := w.sessions.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	proceed := &LeaveDecision{Action: LeaveProceed}
	switch intent.Kind {
	case LeaveBack:
		proceed.Back = true
	case LeaveLink:
		proceed.Navigate = intent.Path
	}

	if !s.state.HasUnsavedChanges(s.booking.Status()) {
		return proceed, nil
	}

	switch intent.Kind {
	case LeaveClose:
		return &LeaveDecision{Action: LeaveWarn}, nil
	case LeaveBack:
		s.leave = &LeaveIntent{Kind: LeaveBack}
		return &LeaveDecision{Action: LeaveConfirm, RepushHistory: true}, nil
	default:
		if !w.intercepts(id, intent.Path) {
			return proceed, nil
		}
		s.leave = &LeaveIntent{Kind: LeaveLink, Path: intent.Path}
		return &LeaveDecision{Action: LeaveConfirm}, nil
	}
}

// intercepts reports whether a link click leaves the wizard within this
// origin. External links and links inside the wizard route pass through.
func (w *wizardCommandsImpl) intercepts(id uuid.UUID, target string) bool {
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return false
	}
	own := w.wizardRoute(id)
	return u.Path != own && !strings.HasPrefix(u.Path, own+"/")
}

func (w *wizardCommandsImpl) wizardRoute(id uuid.UUID) string {
	return path.Join(w.workflow.BookingsPath, id.String(), "approval")
}

func (w *wizardCommandsImpl) ConfirmLeave(ctx context.Context, id uuid.UUID) (*Outcome, error) {
	w.sessions.mu.Lock()
	s, ok := w.sessions.sessions[id]
	if !ok {
		w.sessions.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.busy {
		w.sessions.mu.Unlock()
		return nil, ErrActionInFlight
	}
	intent := s.leave
	w.sessions.removeLocked(id)
	w.sessions.mu.Unlock()

	stopTracker(s)
	w.progress.Clear(ctx, id)

	out := &Outcome{BookingID: id, Status: s.booking.Status()}
	switch {
	case intent == nil:
		out.Navigate = w.workflow.BookingsPath
	case intent.Kind == LeaveBack:
		out.Back = true
	case intent.Path != "":
		out.Navigate = intent.Path
	default:
		out.Navigate = w.workflow.BookingsPath
	}
	return out, nil
}

func (w *wizardCommandsImpl) CancelLeave(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return w.transition(ctx, id, false, func(s *session) error {
		s.leave = nil
		return nil
	})
}

// Close tears the session down without touching stored progress, so a
// reload resumes where the operator left.
func (w *wizardCommandsImpl) Close(id uuid.UUID) error {
	w.sessions.mu.Lock()
	s := w.sessions.removeLocked(id)
	w.sessions.mu.Unlock()
	if s == nil {
		return ErrSessionNotFound
	}
	stopTracker(s)
	return nil
}

func (w *wizardCommandsImpl) Completion(_ context.Context, id uuid.UUID) (*CompletionView, error) {
	t, err := w.tracker(id)
	if err != nil {
		return nil, err
	}
	view := t.Snapshot()
	return &view, nil
}

func (w *wizardCommandsImpl) ConfirmCompletion(ctx context.Context, id uuid.UUID) (*CompletionView, error) {
	var t *CompletionTracker
	epoch, err := w.begin(id, func(s *session) error {
		t = s.tracker
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := t.Confirm(ctx); err != nil {
		w.release(id, epoch)
		return nil, err
	}

	if _, err := w.complete(id, epoch, func(s *session) bool {
		s.booking = t.Booking()
		return false
	}); err != nil {
		return nil, err
	}

	w.logger.Info("tour completion confirmed by company", "booking_id", id)
	view := t.Snapshot()
	return &view, nil
}

func (w *wizardCommandsImpl) FileComplaint(ctx context.Context, id uuid.UUID, message string) (*WizardView, error) {
	note, err := wizard.NewComplaintMessage(message)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	epoch, err := w.begin(id, func(s *session) error {
		if !s.booking.Status().IsAwaitingConfirmation() {
			return ErrComplaintNotAllowed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := w.backend.ChangeBookingStatus(ctx, id, booking.StatusUnderComplaint, note.String())
	if err != nil {
		w.release(id, epoch)
		return nil, shared.MarkBackendErr(err, "failed to file complaint")
	}

	var view *WizardView
	if _, err := w.complete(id, epoch, func(s *session) bool {
		s.booking = updated
		s.tracker.Replace(updated)
		view = s.view()
		return false
	}); err != nil {
		return nil, err
	}

	w.logger.Info("complaint filed", "booking_id", id)
	return view, nil
}

// Shutdown stops every poller. Sessions are discarded; stored progress is
// kept.
func (w *wizardCommandsImpl) Shutdown() {
	for _, s := range w.sessions.drain() {
		stopTracker(s)
	}
}

func (w *wizardCommandsImpl) tracker(id uuid.UUID) (*CompletionTracker, error) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()
	s, ok := w.sessions.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.tracker, nil
}

// begin marks the session busy after check passes and returns its epoch.
func (w *wizardCommandsImpl) begin(id uuid.UUID, check func(s *session) error) (uint64, error) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()

	s, ok := w.sessions.sessions[id]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if s.busy {
		return 0, ErrActionInFlight
	}
	if err := check(s); err != nil {
		return 0, err
	}
	s.busy = true
	return s.epoch, nil
}

// release clears the busy flag if the session is still the one that started
// the action.
func (w *wizardCommandsImpl) release(id uuid.UUID, epoch uint64) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()
	if s, ok := w.sessions.sessions[id]; ok && s.epoch == epoch {
		s.busy = false
	}
}

// complete applies the result of an async action to the session that
// started it. When apply returns true the session is removed and returned so
// the caller can stop its tracker outside the lock.
func (w *wizardCommandsImpl) complete(id uuid.UUID, epoch uint64, apply func(s *session) bool) (*session, error) {
	w.sessions.mu.Lock()
	defer w.sessions.mu.Unlock()

	s, ok := w.sessions.sessions[id]
	if !ok || s.epoch != epoch {
		w.logger.Info("dropping result for stale wizard session", "booking_id", id)
		return nil, ErrSessionSuperseded
	}
	s.busy = false
	if apply(s) {
		return w.sessions.removeLocked(id), nil
	}
	return nil, nil
}
