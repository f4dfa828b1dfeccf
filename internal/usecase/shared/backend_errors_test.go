//go:build unit

package shared_test

import (
	"testing"

	"tour-booking-console/internal/infra"
	"tour-booking-console/internal/pkg/errs"
	"tour-booking-console/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestMarkBackendErr(t *testing.T) {
	testCases := []struct {
		name string
		kind infra.BackendErrorKind
		want error
	}{
		{name: "unauthorized", kind: infra.KindUnauthorized, want: errs.ErrSessionExpired},
		{name: "not found", kind: infra.KindNotFound, want: errs.ErrBookingNotFound},
		{name: "rejected", kind: infra.KindRejected, want: errs.ErrBackendRejected},
		{name: "transport", kind: infra.KindTransport, want: errs.ErrBackendUnavailable},
		{name: "bad response", kind: infra.KindBadResponse, want: errs.ErrBackendUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cause := infra.BackendError{Kind: tc.kind}

			err := shared.MarkBackendErr(cause, "failed to load booking")

			assert.True(t, errs.Is(err, tc.want), "expected mark [%v] on (%v)", tc.want, err)
			assert.True(t, infra.IsKind(err, tc.kind), "original error stays in the chain")
		})
	}

	assert.NoError(t, shared.MarkBackendErr(nil, "unused"))
}

func TestMarkGuestBackendErr(t *testing.T) {
	t.Run("404 means the guest is missing", func(t *testing.T) {
		err := shared.MarkGuestBackendErr(infra.BackendError{Kind: infra.KindNotFound, Status: 404}, "failed to change insurance status")

		assert.True(t, errs.Is(err, errs.ErrGuestNotFound))
		assert.False(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("other kinds map like booking calls", func(t *testing.T) {
		err := shared.MarkGuestBackendErr(infra.BackendError{Kind: infra.KindRejected, Status: 409}, "failed to change insurance status")

		assert.True(t, errs.Is(err, errs.ErrBackendRejected))
	})

	assert.NoError(t, shared.MarkGuestBackendErr(nil, "unused"))
	assert.False(t, errs.Is(shared.MarkGuestBackendErr(errs.New("boom"), "x"), errs.ErrGuestNotFound))
}
