package commands

import (
	"sync"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"

	"github.com/google/uuid"
)

type session struct {
	epoch   uint64
	booking *booking.Booking
	guests  []booking.Guest
	state   wizard.State
	leave   *LeaveIntent
	busy    bool
	tracker *CompletionTracker
}

func (s *session) view() *WizardView {
	guests := make([]booking.Guest, len(s.guests))
	copy(guests, s.guests)
	return &WizardView{
		Booking:        s.booking,
		Guests:         guests,
		Mode:           s.state.Mode(),
		Step:           s.state.Step(),
		Completed:      s.state.Completed().Steps(),
		Clickable:      s.state.Clickable(),
		Pending:        s.state.Pending(),
		UnsavedChanges: s.state.HasUnsavedChanges(s.booking.Status()),
		Busy:           s.busy,
		LeavePending:   s.leave != nil,
	}
}

// registry holds one live session per booking. Backend calls never run
// while mu is held.
type registry struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*session
	nextEpoch uint64
}

func newRegistry() *registry {
	return &registry{sessions: make(map[uuid.UUID]*session)}
}

// put installs s and returns the session it replaced, if any.
func (r *registry) put(id uuid.UUID, s *session) *session {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextEpoch++
	s.epoch = r.nextEpoch
	old := r.sessions[id]
	r.sessions[id] = s
	return old
}

// removeLocked must be called with mu held.
func (r *registry) removeLocked(id uuid.UUID) *session {
	s := r.sessions[id]
	delete(r.sessions, id)
	return s
}

func (r *registry) drain() []*session {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*session, 0, len(r.sessions))
	for id, s := range r.sessions {
		out = append(out, s)
		delete(r.sessions, id)
	}
	return out
}

func stopTracker(s *session) {
	if s != nil && s.tracker != nil {
		s.tracker.Stop()
	}
}
