package errs

import "errors"

// Sentinel markers shared by the ledger, the remote client and the router.
// Concrete errors carry a human readable message and are marked with one of these.
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input format")

	// Ledger errors
	ErrDuplicateBooking  = errors.New("duplicate booking")
	ErrSlotTaken         = errors.New("slot taken")
	ErrQuotaExceeded     = errors.New("quota exceeded")
	ErrNoQuotaConfigured = errors.New("no quota configured")
	ErrBookingNotFound   = errors.New("booking not found")

	// Remote backend errors
	ErrRemoteTimeout    = errors.New("remote timeout")
	ErrRemoteConnection = errors.New("remote connection error")
	ErrRemoteBadFormat  = errors.New("remote bad response format")
	ErrRemoteReported   = errors.New("remote reported error")

	// Routing errors
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrUnknownMode          = errors.New("unknown mode")
)

// IsRemote reports whether err originated from the remote backend.
func IsRemote(err error) bool {
	return IsAny(err, ErrRemoteTimeout, ErrRemoteConnection, ErrRemoteBadFormat, ErrRemoteReported)
}
