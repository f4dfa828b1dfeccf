package commands

import (
	"fmt"

	"tour-booking-console/internal/pkg/errs"
)

var (
	ErrSessionNotFound      = errs.New("no wizard session for booking")
	ErrSessionSuperseded    = errs.New("wizard session was replaced or closed")
	ErrActionInFlight       = errs.New("another action is still in flight")
	ErrUnknownGuest         = errs.New("guest does not belong to booking")
	ErrInvalidInsurance     = errs.New("insurance status is required")
	ErrInsuranceFlushFailed = errs.New("insurance update failed")
	ErrCompletionNotAllowed = errs.New("tour completion cannot be confirmed yet")
	ErrComplaintNotAllowed  = errs.New("complaints are only accepted while completion is pending")
)

// BatchFlushError reports a finish attempt stopped by a failing insurance
// update. Edits before the failing one were applied and are not rolled back.
type BatchFlushError struct {
	Total     int
	Attempted int
	Succeeded int
	Err       error
}

func (e *BatchFlushError) Error() string {
	return fmt.Sprintf("insurance update %d of %d failed (%d applied): %v",
		e.Attempted, e.Total, e.Succeeded, e.Err)
}

func (e *BatchFlushError) Unwrap() error {
	return e.Err
}

func (e *BatchFlushError) Is(target error) bool {
	return target == ErrInsuranceFlushFailed
}
