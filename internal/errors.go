package internal

import "errors"

// Failure classes of the accumulator. All failures are synchronous and
// fail-fast: a violated precondition propagates immediately and no state
// is mutated. Callers match with errors.Is.
var (
	// ErrInvalidTime reports a timestamp outside the period's bounds,
	// or one that precedes the period's last update.
	ErrInvalidTime = errors.New("timestamp outside period bounds")

	// ErrValueOverflow reports a multiplication or addition whose result
	// exceeds the 256-bit unsigned range.
	ErrValueOverflow = errors.New("arithmetic overflow")

	// ErrEmptyAggregate reports an aggregation with nothing to average:
	// an empty period list or a zero summed weighted duration.
	ErrEmptyAggregate = errors.New("no weighted duration to aggregate")
)
