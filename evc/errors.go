package evc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHosts is returned when an operation requiring a non-empty host list is
// given an empty one. Raised before any inventory I/O.
var ErrNoHosts = errors.New("host list is empty")

// UnknownModeError reports a caller-supplied target mode key that does not
// match any entry in the provider's catalog. It carries the full list of
// currently valid keys so the caller can present them.
//
// A host's own unresolvable MaxModeKey is never reported this way: that case
// is a normal "not compatible / no common mode" outcome, not an error.
type UnknownModeError struct {
	Key       string
	ValidKeys []string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown EVC mode %q (supported modes: %s)",
		e.Key, strings.Join(e.ValidKeys, ", "))
}

// IsUnknownMode reports whether err is (or wraps) an UnknownModeError.
func IsUnknownMode(err error) bool {
	var u *UnknownModeError
	return errors.As(err, &u)
}
