//go:build unit

package progress_test

import (
	"context"
	"errors"
	"testing"

	"tour-booking-console/internal/domain/wizard"
	"tour-booking-console/internal/infra/kvstore"
	"tour-booking-console/internal/infra/progress"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}
func (failingKV) Put(context.Context, string, []byte) error { return errors.New("disk on fire") }
func (failingKV) Delete(context.Context, string) error      { return errors.New("disk on fire") }

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryKV()
	store := progress.NewStore(kv, nil)
	id := uuid.New()

	assert.Equal(t, wizard.EmptyProgress(), store.Load(ctx, id), "nothing stored yet")

	want := wizard.Progress{CurrentStep: wizard.StepGuests, Completed: wizard.NewStepSet(wizard.StepReview)}
	store.Save(ctx, id, want)
	assert.Equal(t, want, store.Load(ctx, id))

	raw, ok, err := kv.Get(ctx, progress.Key(id))
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"currentStep":2,"completedSteps":[1]}`, string(raw))

	store.Clear(ctx, id)
	assert.Equal(t, wizard.EmptyProgress(), store.Load(ctx, id))
}

func TestStore_Key(t *testing.T) {
	id := uuid.MustParse("5f1c6f0e-8f3b-4f7a-9b9e-0c7c0e0b6a11")
	assert.Equal(t, "booking_wizard_progress:5f1c6f0e-8f3b-4f7a-9b9e-0c7c0e0b6a11", progress.Key(id))
}

func TestStore_LoadTolerance(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want wizard.Progress
	}{
		{
			name: "corrupt json",
			raw:  `{"currentStep":`,
			want: wizard.EmptyProgress(),
		},
		{
			name: "step out of range",
			raw:  `{"currentStep":5,"completedSteps":[1,2]}`,
			want: wizard.EmptyProgress(),
		},
		{
			name: "invalid completed entries are dropped",
			raw:  `{"currentStep":3,"completedSteps":[0,1,2,9]}`,
			want: wizard.Progress{CurrentStep: wizard.StepConfirm, Completed: wizard.NewStepSet(wizard.StepReview, wizard.StepGuests)},
		},
		{
			name: "missing completed list",
			raw:  `{"currentStep":1}`,
			want: wizard.Progress{CurrentStep: wizard.StepReview},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			kv := kvstore.NewMemoryKV()
			id := uuid.New()
			require.NoError(t, kv.Put(ctx, progress.Key(id), []byte(tc.raw)))

			got := progress.NewStore(kv, nil).Load(ctx, id)

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStore_UnavailableStorage(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	p := wizard.Progress{CurrentStep: wizard.StepGuests, Completed: wizard.NewStepSet(wizard.StepReview)}

	t.Run("nil kv is a no-op", func(t *testing.T) {
		store := progress.NewStore(nil, nil)
		assert.NotPanics(t, func() {
			store.Save(ctx, id, p)
			store.Clear(ctx, id)
		})
		assert.Equal(t, wizard.EmptyProgress(), store.Load(ctx, id))
	})

	t.Run("failing kv is swallowed", func(t *testing.T) {
		store := progress.NewStore(failingKV{}, nil)
		assert.NotPanics(t, func() {
			store.Save(ctx, id, p)
			store.Clear(ctx, id)
		})
		assert.Equal(t, wizard.EmptyProgress(), store.Load(ctx, id))
	})
}
