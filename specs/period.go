package specs

// PeriodSpec represents one observation window with its running accumulation state.
//
// A period tracks the time-weighted sum of an observed value over the interval
// [StartTime, EndTime]. The value is treated as a step function: it holds
// constant from one update to the next, and each update folds the elapsed
// sub-interval's contribution (value × elapsed) into the weighted sum.
//
// A period is owned by whichever caller created it. It is mutated only through
// the UpdateValue operation and becomes immutable once a later period begins
// or a final aggregation is requested at or after EndTime.
//
// Invariants:
//   - StartTime <= LastUpdateTime <= EndTime
//   - TotalDuration never exceeds EndTime - StartTime
//   - WeightedSum is monotonically non-decreasing while the period is open
type PeriodSpec struct {
	// Inclusive start of the observation window.
	//
	// An integer timestamp in a caller-chosen unit (typically seconds).
	// The accumulator never reads a clock; all timestamps are supplied
	// by the caller.
	StartTime uint64 `json:"startTime"`

	// Inclusive end of the observation window.
	//
	// Always StartTime + duration as given to CreatePeriod. Updates with
	// a timestamp beyond EndTime are rejected.
	EndTime uint64 `json:"endTime"`

	// Timestamp of the most recent value update within this period.
	//
	// Initialized to StartTime. The current Value holds over the open
	// sub-interval [LastUpdateTime, next update].
	LastUpdateTime uint64 `json:"lastUpdateTime"`

	// The observed value holding since LastUpdateTime.
	//
	// A non-negative integer as a decimal string, preserving the full
	// 256-bit unsigned range across language boundaries. Examples:
	// "42", "1000000000000000000".
	Value string `json:"value"`

	// Running total of value × duration accumulated so far.
	//
	// Decimal string, 256-bit unsigned range. After any sequence of
	// updates this equals the exact integral of the value step function
	// over [StartTime, LastUpdateTime].
	WeightedSum string `json:"weightedSum"`

	// Running total of elapsed duration accumulated so far.
	//
	// Equals LastUpdateTime - StartTime after any sequence of updates.
	TotalDuration uint64 `json:"totalDuration"`

	// Fixed-point scale factor registered when the period was created.
	//
	// Carried for callers that normalize weights against it (typically
	// "1000000000000000000", i.e. 1e18). The accumulator's arithmetic is
	// precision-agnostic and never reads this field.
	WeightPrecision string `json:"weightPrecision"`
}

// PeriodParamsSpec represents one historical observation window for aggregation.
//
// Unlike PeriodSpec, this is a pure input record: it is never mutated, and a
// list of PeriodParamsSpec entries may contain windows that overlap each other.
// CalculateTimeWeightedAverage makes no attempt to merge overlapping windows;
// see its documentation for the consequences.
type PeriodParamsSpec struct {
	// Inclusive start of the observation window.
	StartTime uint64 `json:"startTime"`

	// Inclusive end of the observation window.
	//
	// Must not precede StartTime. Windows that have not yet closed are
	// clipped to the aggregation's currentTime.
	EndTime uint64 `json:"endTime"`

	// The value observed over this window, as a decimal string.
	//
	// 256-bit unsigned range. Typically a per-period time-weighted
	// average produced by the accumulator, but any caller-supplied
	// reading is accepted.
	Value string `json:"value"`

	// Fixed-point multiplier scaling this window's contribution.
	//
	// Decimal string, 256-bit unsigned range. A weight equal to the
	// shared precision scale (typically "1000000000000000000" for 1e18)
	// acts as the identity multiplier: the scale cancels between
	// numerator and denominator as long as all weights share it.
	Weight string `json:"weight"`
}
