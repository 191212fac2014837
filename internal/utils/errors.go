package utils

import "errors"

// Common application errors used across link builders.
var (
	// ErrOutOfRange reports a numeric argument outside its allowed range
	// (negative order id, non-positive amount, inverted key range).
	ErrOutOfRange = errors.New("OUT_OF_RANGE")
	// ErrInvalidArgument reports a missing dependency or a blank string argument.
	ErrInvalidArgument = errors.New("INVALID_ARGUMENT")
)
