package specs

// CreatePeriod initializes a fresh observation period.
//
// Inputs:
//   - startTime: current or future timestamp where observation begins
//   - duration: length of the window; must be > 0
//   - initialValue: the reading holding at startTime (decimal string)
//   - weightPrecision: fixed-point scale for weight normalization, e.g.
//     "1000000000000000000" for 1e18; must be > 0
//
// The new period has EndTime = startTime + duration, LastUpdateTime =
// startTime, WeightedSum = "0", TotalDuration = 0, Value = initialValue.
//
// Non-overlap guarantee: periods on the same timeline do not overlap only
// if the caller creates them strictly in increasing time order. This is a
// caller precondition — it is not checked here. Callers that want the
// check enforced at runtime should track periods through a strict-ordering
// timeline instead of calling CreatePeriod directly.
//
// Returns an error if duration or weightPrecision is zero, if a value
// fails to parse, or if startTime + duration overflows.
//
// This is the spec-level interface using only primitive types.
// See internal.CreatePeriod for the reference implementation.
type CreatePeriod func(startTime, duration uint64, initialValue, weightPrecision string) (PeriodSpec, error)

// UpdateValue records a new observed value at the given timestamp.
//
// Process:
//  1. Reject timestamp outside [StartTime, EndTime], or before
//     LastUpdateTime (invalid-time failure)
//  2. Compute elapsed = timestamp - LastUpdateTime
//  3. If elapsed > 0: compute contribution = Value × elapsed with a
//     multiplication-overflow guard, then add it to WeightedSum with an
//     addition-overflow guard (value-overflow failure on either), and add
//     elapsed to TotalDuration
//  4. Set Value = newValue and LastUpdateTime = timestamp
//
// After the call WeightedSum equals the exact integral of the value step
// function over [StartTime, timestamp]. On any failure the returned error
// is non-nil and the input period is unchanged — callers keep their
// original record.
//
// This is the spec-level interface using only primitive types.
// See internal.UpdateValue for the reference implementation.
type UpdateValue func(period PeriodSpec, newValue string, timestamp uint64) (PeriodSpec, error)
