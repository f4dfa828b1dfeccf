package progress

import (
	"context"
	"encoding/json"
	"log/slog"

	"tour-booking-console/internal/domain/wizard"

	"github.com/google/uuid"
)

const keyPrefix = "booking_wizard_progress:"

// KV is the byte-level storage the progress store sits on.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type record struct {
	CurrentStep    int   `json:"currentStep"`
	CompletedSteps []int `json:"completedSteps"`
}

// Store persists wizard progress per booking. It never fails the caller:
// storage problems are logged and treated as "no stored progress".
type Store struct {
	kv     KV
	logger *slog.Logger
}

// NewStore accepts a nil kv, which turns every operation into a no-op.
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger.With("component", "progress_store")}
}

func Key(bookingID uuid.UUID) string {
	return keyPrefix + bookingID.String()
}

func (s *Store) Load(ctx context.Context, bookingID uuid.UUID) wizard.Progress {
	if s.kv == nil {
		return wizard.EmptyProgress()
	}

	raw, ok, err := s.kv.Get(ctx, Key(bookingID))
	if err != nil {
		s.logger.Warn("failed to read wizard progress", "booking_id", bookingID, "error", err)
		return wizard.EmptyProgress()
	}
	if !ok {
		return wizard.EmptyProgress()
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn("stored wizard progress is unreadable", "booking_id", bookingID, "error", err)
		return wizard.EmptyProgress()
	}
	return decode(rec)
}

func (s *Store) Save(ctx context.Context, bookingID uuid.UUID, p wizard.Progress) {
	if s.kv == nil {
		return
	}

	raw, err := json.Marshal(encode(p))
	if err != nil {
		s.logger.Warn("failed to encode wizard progress", "booking_id", bookingID, "error", err)
		return
	}
	if err := s.kv.Put(ctx, Key(bookingID), raw); err != nil {
		s.logger.Warn("failed to write wizard progress", "booking_id", bookingID, "error", err)
	}
}

func (s *Store) Clear(ctx context.Context, bookingID uuid.UUID) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(ctx, Key(bookingID)); err != nil {
		s.logger.Warn("failed to clear wizard progress", "booking_id", bookingID, "error", err)
	}
}

func encode(p wizard.Progress) record {
	steps := p.Completed.Steps()
	completed := make([]int, len(steps))
	for i, st := range steps {
		completed[i] = int(st)
	}
	return record{CurrentStep: int(p.CurrentStep), CompletedSteps: completed}
}

// decode drops anything outside 1..3 rather than rejecting the whole record.
func decode(rec record) wizard.Progress {
	step := wizard.Step(rec.CurrentStep)
	if !step.IsValid() {
		return wizard.EmptyProgress()
	}
	var completed wizard.StepSet
	for _, v := range rec.CompletedSteps {
		completed = completed.Add(wizard.Step(v))
	}
	return wizard.Progress{CurrentStep: step, Completed: completed}
}
