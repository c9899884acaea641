package booking

import (
	"strings"

	"donor-booking/internal/pkg/errs"
)

type Mode string

const (
	ModeLocalOnly          Mode = "LocalOnly"
	ModeRemoteOnly         Mode = "RemoteOnly"
	ModeRemoteWithFallback Mode = "RemoteWithFallback"
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "localonly":
		return ModeLocalOnly, nil
	case "remote", "remoteonly", "google":
		return ModeRemoteOnly, nil
	case "hybrid", "remotewithfallback":
		return ModeRemoteWithFallback, nil
	default:
		return "", errs.Mark(errs.Newf("unknown mode: %q", s), errs.ErrUnknownMode)
	}
}

func (m Mode) String() string {
	return string(m)
}

func (m Mode) UsesRemote() bool {
	return m == ModeRemoteOnly || m == ModeRemoteWithFallback
}
