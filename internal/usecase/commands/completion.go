package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/pkg/clock"
	"tour-booking-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// CompletionView is what the operator sees on the completion panel.
type CompletionView struct {
	BookingID        uuid.UUID      `json:"booking_id"`
	Status           booking.Status `json:"status"`
	CompanyConfirmed bool           `json:"company_confirmed"`
	UserConfirmed    bool           `json:"user_confirmed"`
	Completed        bool           `json:"completed"`
	CanConfirm       bool           `json:"can_confirm"`
	TourEndDate      time.Time      `json:"tour_end_date"`
	AutoConfirmDate  time.Time      `json:"auto_confirm_date"`
	AutoConfirmLocal bool           `json:"auto_confirm_local"`
	Provisional      bool           `json:"provisional"`
	Polling          bool           `json:"polling"`
}

// DefaultPollInterval applies when the configured interval is not positive.
const DefaultPollInterval = 30 * time.Second

// CompletionTracker follows the dual completion confirmation of one booking.
// While the booking waits for both parties it re-reads the backend on a
// fixed interval until Stop is called.
type CompletionTracker struct {
	backend  shared.BookingBackend
	clock    clock.Clock
	logger   *slog.Logger
	interval time.Duration

	mu          sync.Mutex
	booking     *booking.Booking
	state       booking.CompletionState
	provisional bool
	stopped     bool
	cancel      context.CancelFunc
	done        chan struct{}
}

func NewCompletionTracker(
	backend shared.BookingBackend,
	b *booking.Booking,
	interval time.Duration,
	clk clock.Clock,
	logger *slog.Logger,
) *CompletionTracker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &CompletionTracker{
		backend:  backend,
		clock:    clk,
		logger:   logger.With("booking_id", b.ID()),
		interval: interval,
		booking:  b,
		state:    b.CompletionState(),
	}
}

// Start launches the poller when the booking is waiting for confirmation.
// The context only carries request values; cancellation comes from Stop.
func (t *CompletionTracker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.cancel != nil || !t.shouldPollLocked() {
		return
	}

	pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.poll(pollCtx, t.done)
}

func (t *CompletionTracker) poll(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				t.logger.Warn("completion poll failed", "error", err)
				continue
			}
			t.mu.Lock()
			keepGoing := t.shouldPollLocked()
			t.mu.Unlock()
			if !keepGoing {
				return
			}
		}
	}
}

func (t *CompletionTracker) Interval() time.Duration {
	return t.interval
}

// Stop cancels the poller and waits for it to exit. After Stop returns the
// tracker state no longer changes.
func (t *CompletionTracker) Stop() {
	t.mu.Lock()
	t.stopped = true
	cancel, done := t.cancel, t.done
	t.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Refresh replaces the tracked state with a fresh backend read. Booking and
// completion verdict are read together and swapped in as a whole.
func (t *CompletionTracker) Refresh(ctx context.Context) error {
	id := t.bookingID()

	b, err := t.backend.GetBooking(ctx, id)
	if err != nil {
		return shared.MarkBackendErr(err, "failed to refresh booking")
	}
	completed, err := t.backend.GetTourCompletionStatus(ctx, id)
	if err != nil {
		return shared.MarkBackendErr(err, "failed to read completion status")
	}

	state := b.CompletionState()
	state.ServerCompleted = &completed

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return nil
	}
	t.booking = b
	t.state = state
	t.provisional = false
	return nil
}

// Confirm records the company side of the confirmation. The local flag is
// provisional until the follow-up read lands.
func (t *CompletionTracker) Confirm(ctx context.Context) error {
	t.mu.Lock()
	canConfirm := t.state.CanConfirm(clock.Today(t.clock))
	id := t.booking.ID()
	t.mu.Unlock()
	if !canConfirm {
		return ErrCompletionNotAllowed
	}

	if err := t.backend.CompanyConfirmTourCompletion(ctx, id); err != nil {
		return shared.MarkBackendErr(err, "failed to confirm tour completion")
	}

	t.mu.Lock()
	if !t.stopped {
		t.state.CompanyConfirmed = true
		t.provisional = true
	}
	t.mu.Unlock()

	if err := t.Refresh(ctx); err != nil {
		t.logger.Warn("completion refresh after confirm failed", "error", err)
	}
	return nil
}

// Replace swaps in a booking read by someone else, e.g. after a status change.
func (t *CompletionTracker) Replace(b *booking.Booking) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.booking = b
	t.state = b.CompletionState()
	t.provisional = false
}

func (t *CompletionTracker) Booking() *booking.Booking {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.booking
}

func (t *CompletionTracker) Snapshot() CompletionView {
	t.mu.Lock()
	defer t.mu.Unlock()

	deadline, derived := t.state.AutoConfirmDeadline()
	return CompletionView{
		BookingID:        t.booking.ID(),
		Status:           t.state.Status,
		CompanyConfirmed: t.state.CompanyConfirmed,
		UserConfirmed:    t.state.UserConfirmed,
		Completed:        t.state.IsCompleted(),
		CanConfirm:       t.state.CanConfirm(clock.Today(t.clock)),
		TourEndDate:      t.state.TourEndDate,
		AutoConfirmDate:  deadline,
		AutoConfirmLocal: derived,
		Provisional:      t.provisional,
		Polling:          t.cancel != nil && !t.stopped && t.shouldPollLocked(),
	}
}

func (t *CompletionTracker) bookingID() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.booking.ID()
}

func (t *CompletionTracker) shouldPollLocked() bool {
	return t.state.Status.IsAwaitingConfirmation() && !t.state.IsCompleted()
}
