package specs

// CalculateTimeWeightedAverage reduces a list of historical observation
// windows into a single time-weighted average at currentTime.
//
// For each entry, the effective duration is EndTime - StartTime with
// EndTime clipped to currentTime for windows that have not yet closed
// (zero if currentTime precedes StartTime). The result is
//
//	Σ value × effectiveDuration × weight
//	------------------------------------
//	Σ effectiveDuration × weight
//
// with truncating unsigned integer division. Weights sharing one
// fixed-point scale cancel between numerator and denominator, so uniform
// weights of 1e18 ("100%") behave as the identity multiplier.
//
// Overlap caveat: entries whose windows overlap are NOT merged or
// de-duplicated. Two entries covering the identical wall-clock interval
// each contribute at full weight, double-counting that interval in both
// numerator and denominator. This matches the reference behavior and is
// pinned by regression tests; callers that need corrected semantics must
// opt into CalculateMergedTimeWeightedAverage instead.
//
// Fails on an empty list or when the summed duration×weight denominator
// is zero (empty-aggregate failure), and on arithmetic overflow of any
// product or sum (value-overflow failure).
//
// This is the spec-level interface using only primitive types.
// See internal.CalculateTimeWeightedAverage for the reference implementation.
type CalculateTimeWeightedAverage func(periods []PeriodParamsSpec, currentTime uint64) (string, error)

// CalculateMergedTimeWeightedAverage is the corrected aggregation mode.
//
// Before reducing, entries are sorted by StartTime and windows with
// strictly overlapping ranges are merged. Each merged range contributes
// once: its value is the duration-weighted sub-average of its members
// (Σ value × effectiveDuration × weight / Σ effectiveDuration × weight),
// and merged ranges are then averaged against each other weighted by
// their merged durations.
//
// For non-overlapping input this agrees with CalculateTimeWeightedAverage.
// For overlapping input it produces the duration-correct result that the
// faithful reduction does not. This is a separate, explicitly named
// operation — it never silently replaces the faithful one.
//
// Failure modes match CalculateTimeWeightedAverage.
//
// This is the spec-level interface using only primitive types.
// See internal.CalculateMergedTimeWeightedAverage for the reference implementation.
type CalculateMergedTimeWeightedAverage func(periods []PeriodParamsSpec, currentTime uint64) (string, error)
