package api

import (
	"net/http"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"
	resdto "tour-booking-console/internal/handler/dto/response"
	"tour-booking-console/internal/handler/httperr"
	"tour-booking-console/internal/pkg/errs"
	"tour-booking-console/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Error codes let the console pick a message without parsing text.
const (
	codeValidation          = "VALIDATION"
	codeSessionExpired      = "SESSION_EXPIRED"
	codeNotFound            = "NOT_FOUND"
	codeWizardClosed        = "WIZARD_NOT_OPEN"
	codeInFlight            = "ACTION_IN_FLIGHT"
	codeStale               = "SESSION_SUPERSEDED"
	codeTransition          = "TRANSITION_NOT_ALLOWED"
	codeInsufficientPayment = "INSUFFICIENT_PAYMENT"
	codeFlushFailed         = "INSURANCE_FLUSH_FAILED"
	codeBackendRejected     = "BACKEND_REJECTED"
	codeBackendUnavailable  = "BACKEND_UNAVAILABLE"
)

var validationMessages = []struct {
	err error
	msg string
}{
	{wizard.ErrEmptyReason, "Rejection reason is required"},
	{wizard.ErrEmptyMessage, "Message is required"},
	{commands.ErrInvalidInsurance, "Insurance status is required"},
	{commands.ErrUnknownGuest, "Guest does not belong to this booking"},
}

// respondError maps usecase errors to HTTP responses. Anything unknown is a
// 500 with fallback as message.
func respondError(c *gin.Context, err error, fallback string) {
	var flush *commands.BatchFlushError
	var shortfall *booking.InsufficientPaymentError

	switch {
	case errs.Is(err, errs.ErrSessionExpired):
		httperr.AbortWithCode(c, http.StatusUnauthorized, err, "Session expired", codeSessionExpired, nil)

	case errs.As(err, &flush):
		httperr.AbortWithCode(c, http.StatusBadGateway, err, "Insurance update failed", codeFlushFailed, resdto.BatchFlushDetail{
			Total:     flush.Total,
			Attempted: flush.Attempted,
			Succeeded: flush.Succeeded,
		})

	case errs.As(err, &shortfall):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "Paid amount does not cover the deposit",
			codeInsufficientPayment, resdto.FromInsufficientPayment(shortfall))

	case errs.Is(err, errs.ErrValidation), errs.Is(err, commands.ErrUnknownGuest):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, validationMessage(err), codeValidation, nil)

	case errs.Is(err, wizard.ErrInvalidStep):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid step", codeValidation, nil)

	case errs.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "Wizard is not open for this booking", codeWizardClosed, nil)

	case errs.Is(err, errs.ErrGuestNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "Guest not found", codeNotFound, nil)

	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "Booking not found", codeNotFound, nil)

	case errs.Is(err, commands.ErrActionInFlight):
		httperr.AbortWithCode(c, http.StatusConflict, err, "Another action is in progress", codeInFlight, nil)

	case errs.Is(err, commands.ErrSessionSuperseded):
		httperr.AbortWithCode(c, http.StatusConflict, err, "Wizard was reopened or closed", codeStale, nil)

	case errs.Is(err, wizard.ErrTransitionNotAllowed),
		errs.Is(err, wizard.ErrWrongStep),
		errs.Is(err, wizard.ErrStepNotReachable),
		errs.Is(err, commands.ErrCompletionNotAllowed),
		errs.Is(err, commands.ErrComplaintNotAllowed):
		httperr.AbortWithCode(c, http.StatusConflict, err, err.Error(), codeTransition, nil)

	case errs.Is(err, errs.ErrBackendRejected):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "Booking backend rejected the request", codeBackendRejected, nil)

	case errs.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithCode(c, http.StatusBadGateway, err, "Booking backend unavailable", codeBackendUnavailable, nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func validationMessage(err error) string {
	for _, v := range validationMessages {
		if errs.Is(err, v.err) {
			return v.msg
		}
	}
	return "Invalid request"
}
