package infra

import (
	"errors"
	"log/slog"

	"tour-booking-console/internal/pkg/errs"
)

type BackendErrorKind string

// BackendError is returned by every call to the booking backend. Status is
// the HTTP status code when one was received.
type BackendError struct {
	Kind   BackendErrorKind
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e BackendError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e BackendError) Unwrap() error {
	return e.err
}

func WrapBackendErr(slogger *slog.Logger, kind BackendErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindTransport || kind == KindBadResponse {
		slogger.Error("Backend error: "+msg, logArgs...)
	} else {
		slogger.Warn("Backend error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return BackendError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     BackendErrorKind = "NOT_FOUND"
	KindUnauthorized BackendErrorKind = "UNAUTHORIZED"
	KindRejected     BackendErrorKind = "REJECTED"
	KindTransport    BackendErrorKind = "TRANSPORT"
	KindBadResponse  BackendErrorKind = "BAD_RESPONSE"
)
