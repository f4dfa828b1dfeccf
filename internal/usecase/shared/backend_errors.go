package shared

import (
	"tour-booking-console/internal/infra"
	"tour-booking-console/internal/pkg/errs"
)

// MarkBackendErr tags a backend failure with the category the handler layer
// maps to a response. The original error stays in the chain.
func MarkBackendErr(err error, msg string) error {
	return markBackendErr(err, msg, errs.ErrBookingNotFound)
}

// MarkGuestBackendErr is MarkBackendErr for calls addressed to a guest, where
// a 404 means the guest is gone rather than the booking.
func MarkGuestBackendErr(err error, msg string) error {
	return markBackendErr(err, msg, errs.ErrGuestNotFound)
}

func markBackendErr(err error, msg string, notFound error) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, msg)
	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		return errs.Mark(wrapped, errs.ErrSessionExpired)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(wrapped, notFound)
	case infra.IsKind(err, infra.KindRejected):
		return errs.Mark(wrapped, errs.ErrBackendRejected)
	default:
		return errs.Mark(wrapped, errs.ErrBackendUnavailable)
	}
}
