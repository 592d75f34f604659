package model

import "errors"

// Sentinel errors for block/net parsing and database construction.
var (
	// ErrMalformedInput indicates a missing header line, a non-numeric token where a
	// number was expected, or fewer macro/terminal/net records than the header declared.
	ErrMalformedInput = errors.New("model: malformed input")

	// ErrUnknownPin indicates a net references a name that is neither a macro nor a terminal.
	ErrUnknownPin = errors.New("model: net references unknown pin name")

	// ErrInfeasibleInstance indicates no macro fits the outline in either orientation.
	ErrInfeasibleInstance = errors.New("model: no macro fits the outline")

	// ErrMacroNotFound indicates a net references a macro id that has no entry
	// in the bounding-box map passed to Net.HPWL. Database.Macro panics on an
	// out-of-range id rather than returning this error.
	ErrMacroNotFound = errors.New("model: macro id out of range")

	// ErrNetNotFound names an out-of-range net id. Nothing in this package
	// returns it; Database.Net panics on such an id.
	ErrNetNotFound = errors.New("model: net id out of range")
)
