package credit

import "errors"

var (
	// ErrUnknownPhase and ErrUnknownEvent mark a toggle against an id the
	// registry does not contain. These indicate an integration bug in the
	// caller, not a user input problem.
	ErrUnknownPhase = errors.New("unknown phase identifier")
	ErrUnknownEvent = errors.New("unknown event identifier")

	ErrNegativeMinutes = errors.New("override minutes must be non-negative")

	ErrNoPendingReset = errors.New("no reset has been requested")
	ErrStaleReset     = errors.New("session changed since reset was requested")
)
