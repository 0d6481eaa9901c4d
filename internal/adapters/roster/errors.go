package roster

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrOpenRoster    = errors.New("open roster failed")
	ErrParseRoster   = errors.New("parse roster failed")
	ErrUnknownColumn = errors.New("unknown compensation column")
	ErrRowMismatch   = errors.New("roster and audit result length mismatch")
)
