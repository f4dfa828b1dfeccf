//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/infra"
	"tour-booking-console/internal/pkg/clock"
	"tour-booking-console/internal/pkg/errs"
	"tour-booking-console/internal/testutil/builder"
	sharedmock "tour-booking-console/internal/testutil/mock/shared"
	"tour-booking-console/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name   string
		build  *builder.BookingBuilder
		guests []booking.Guest
		check  func(t *testing.T, v *queries.BookingSummaryView)
	}{
		{
			name:   "fully paid with voucher",
			build:  builder.NewBookingBuilder().WithVoucher("SUMMER", 800_000, 240_000).WithPaid(800_000),
			guests: []booking.Guest{builder.NewGuestBuilder().Insured().BuildDomain()},
			check: func(t *testing.T, v *queries.BookingSummaryView) {
				assert.True(t, v.AllInsured)
				assert.True(t, v.Payment.VoucherApplied)
				assert.True(t, v.Payment.EffectiveTotal.Equal(decimal.NewFromInt(800_000)))
				require.NotNil(t, v.Payment.NextStatus)
				assert.Equal(t, booking.StatusBalanceSuccess, *v.Payment.NextStatus)
				assert.Nil(t, v.Payment.Shortfall)
			},
		},
		{
			name:   "short payment is previewed, not guessed",
			build:  builder.NewBookingBuilder().WithPaid(10),
			guests: builder.Guests(1),
			check: func(t *testing.T, v *queries.BookingSummaryView) {
				assert.False(t, v.AllInsured)
				assert.Nil(t, v.Payment.NextStatus)
				require.NotNil(t, v.Payment.Shortfall)
				assert.True(t, v.Payment.Shortfall.RequiredDeposit.Equal(decimal.NewFromInt(300_000)))
			},
		},
		{
			name: "completion panel",
			build: builder.NewBookingBuilder().
				WithStatus(booking.StatusSuccessWaitForConfirmed).
				WithTourEnd(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
			guests: builder.Guests(1),
			check: func(t *testing.T, v *queries.BookingSummaryView) {
				assert.True(t, v.Completion.CanConfirm)
				assert.False(t, v.Completion.Completed)
				assert.True(t, v.Completion.AutoConfirmLocal)
				assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), v.Completion.AutoConfirmDate)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := sharedmock.NewMockBookingBackend(ctrl)
			b := tc.build.MustBuild()
			backend.EXPECT().GetBooking(ctx, b.ID()).Return(b, nil)
			backend.EXPECT().GetGuests(ctx, b.ID()).Return(tc.guests, nil)

			q := queries.NewBookingQueries(backend, clock.NewMockClock(now), logger)
			got, err := q.GetSummary(ctx, b.ID())

			require.NoError(t, err)
			assert.Equal(t, b.ID(), got.Booking.ID())
			tc.check(t, got)
		})
	}
}

func TestBookingQueries_GetSummary_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := sharedmock.NewMockBookingBackend(ctrl)
	b := builder.NewBookingBuilder().MustBuild()
	backend.EXPECT().GetBooking(ctx, b.ID()).Return(nil, infra.BackendError{Kind: infra.KindNotFound, Status: 404})

	q := queries.NewBookingQueries(backend, clock.NewMockClock(time.Now()), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := q.GetSummary(ctx, b.ID())

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
}
