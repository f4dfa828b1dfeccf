//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/pkg/clock"
	"tour-booking-console/internal/testutil/builder"
	sharedmock "tour-booking-console/internal/testutil/mock/shared"
	"tour-booking-console/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompletionTracker_PollsUntilCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := sharedmock.NewMockBookingBackend(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bld := builder.NewBookingBuilder().WithStatus(booking.StatusSuccessWaitForConfirmed)
	waiting := bld.MustBuild()
	finished := bld.WithStatus(booking.StatusSuccess).MustBuild()

	var reads atomic.Int32
	backend.EXPECT().GetBooking(gomock.Any(), waiting.ID()).
		DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) {
			if reads.Add(1) < 3 {
				return waiting, nil
			}
			return finished, nil
		}).AnyTimes()
	backend.EXPECT().GetTourCompletionStatus(gomock.Any(), waiting.ID()).
		DoAndReturn(func(context.Context, uuid.UUID) (bool, error) {
			return reads.Load() >= 3, nil
		}).AnyTimes()

	tracker := commands.NewCompletionTracker(backend, waiting, 10*time.Millisecond, clock.NewMockClock(today), logger)
	tracker.Start(context.Background())
	t.Cleanup(tracker.Stop)

	assert.Eventually(t, func() bool {
		return tracker.Snapshot().Completed
	}, 2*time.Second, 10*time.Millisecond)

	snap := tracker.Snapshot()
	assert.Equal(t, booking.StatusSuccess, snap.Status)
	assert.False(t, snap.Polling)

	settled := reads.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, reads.Load(), "polling stops once completed")
}

func TestCompletionTracker_StopFreezesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := sharedmock.NewMockBookingBackend(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	waiting := builder.NewBookingBuilder().WithStatus(booking.StatusSuccessWaitForConfirmed).MustBuild()
	backend.EXPECT().GetBooking(gomock.Any(), waiting.ID()).Return(waiting, nil).AnyTimes()
	backend.EXPECT().GetTourCompletionStatus(gomock.Any(), waiting.ID()).Return(false, nil).AnyTimes()

	tracker := commands.NewCompletionTracker(backend, waiting, 5*time.Millisecond, clock.NewMockClock(today), logger)
	tracker.Start(context.Background())
	assert.True(t, tracker.Snapshot().Polling)

	tracker.Stop()

	assert.False(t, tracker.Snapshot().Polling)
	tracker.Replace(waiting.WithStatus(booking.StatusSuccess))
	assert.Equal(t, booking.StatusSuccessWaitForConfirmed, tracker.Snapshot().Status, "a stopped tracker ignores updates")
}

func TestCompletionTracker_NoPollingOutsideConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := sharedmock.NewMockBookingBackend(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	b := builder.NewBookingBuilder().WithStatus(booking.StatusSuccessPending).MustBuild()

	tracker := commands.NewCompletionTracker(backend, b, time.Millisecond, clock.NewMockClock(today), logger)
	tracker.Start(context.Background())
	defer tracker.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, tracker.Snapshot().Polling)
}

func TestCompletionTracker_NonPositiveIntervalFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := sharedmock.NewMockBookingBackend(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	waiting := builder.NewBookingBuilder().WithStatus(booking.StatusSuccessWaitForConfirmed).MustBuild()

	for _, interval := range []time.Duration{0, -time.Second} {
		tracker := commands.NewCompletionTracker(backend, waiting, interval, clock.NewMockClock(today), logger)
		assert.Equal(t, commands.DefaultPollInterval, tracker.Interval())

		assert.NotPanics(t, func() { tracker.Start(context.Background()) })
		assert.True(t, tracker.Snapshot().Polling)
		tracker.Stop()
	}
}

func TestCompletionTracker_CanConfirmOnTourEndDayEastOfUTC(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := sharedmock.NewMockBookingBackend(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ict := time.FixedZone("ICT", 7*60*60)

	b := builder.NewBookingBuilder().
		WithStatus(booking.StatusSuccessWaitForConfirmed).
		WithTourEnd(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)).
		MustBuild()

	for _, hour := range []int{9, 14, 23} {
		clk := clock.NewMockClock(time.Date(2025, 3, 10, hour, 0, 0, 0, ict))
		tracker := commands.NewCompletionTracker(backend, b, time.Minute, clk, logger)

		assert.True(t, tracker.Snapshot().CanConfirm, "hour %d ICT on the tour end day", hour)
	}
}
