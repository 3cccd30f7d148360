package core

import "errors"

// Error taxonomy. Structural errors (session, energy) are sentinels so
// callers can branch with errors.Is; action failures carry structure and live
// in the tool package as ToolError.
var (
	// ErrUnknownSession is returned by store operations on an absent session
	// ID. The dispatcher handles it by auto-creating rather than propagating
	// to the end user.
	ErrUnknownSession = errors.New("unknown session")

	// ErrDuplicateSession is returned by Create when the ID already exists.
	ErrDuplicateSession = errors.New("duplicate session")

	// ErrInvalidEnergyLevel is returned when an energy level is not one of
	// the recognized values. Surfaced to the user as a clarification
	// request, never a crash.
	ErrInvalidEnergyLevel = errors.New("invalid energy level")

	// ErrAnswerUnavailable marks the answer generation capability as
	// unreachable or unconfigured. It triggers the dispatcher's degraded
	// canned-response path.
	ErrAnswerUnavailable = errors.New("answer generation unavailable")
)
