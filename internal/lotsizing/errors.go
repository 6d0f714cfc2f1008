package lotsizing

import "errors"

var (
	// ErrInvalidInstance indicates malformed input: mismatched lengths, an
	// empty horizon, a non-numeric (NaN/Inf) value or a negative value. It is
	// also returned when finite inputs drive the optimal cost past float64.
	ErrInvalidInstance = errors.New("lotsizing: invalid instance")

	// ErrReconstructionInconsistency indicates a predecessor table that does
	// not describe a partition of the horizon. It points at a bug in the
	// recurrence or a tampered table, never at bad input.
	ErrReconstructionInconsistency = errors.New("lotsizing: reconstruction inconsistency")
)
