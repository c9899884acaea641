package infra

import (
	"log/slog"

	"donor-booking/internal/pkg/errs"
)

type BackendErrorKind string

// BackendError is the normalised failure of a remote call. Its Error text is
// what requesters see, so it never includes the wrapped transport error.
type BackendError struct {
	Kind BackendErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e BackendError) Error() string {
	return e.msg
}

func (e BackendError) Unwrap() error {
	return e.err
}

// WrapBackendErr logs the failure and returns a BackendError marked with the
// sentinel matching its kind.
func WrapBackendErr(slogger *slog.Logger, kind BackendErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}
	if slogger != nil {
		slogger.Error("Remote backend error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(BackendError{Kind: kind, msg: msg, err: err}, kind.sentinel())
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func (k BackendErrorKind) sentinel() error {
	switch k {
	case KindTimeout:
		return errs.ErrRemoteTimeout
	case KindConnection:
		return errs.ErrRemoteConnection
	case KindBadFormat:
		return errs.ErrRemoteBadFormat
	default:
		return errs.ErrRemoteReported
	}
}

// Infrastructure-specific error kinds
const (
	KindTimeout        BackendErrorKind = "TIMEOUT"
	KindConnection     BackendErrorKind = "CONNECTION"
	KindBadFormat      BackendErrorKind = "BAD_FORMAT"
	KindRemoteReported BackendErrorKind = "REMOTE_REPORTED"
)
