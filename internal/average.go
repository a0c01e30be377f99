package internal

import (
	"fmt"
	"sort"

	specs "timeweighted-spec/specs"
)

// CalculateTimeWeightedAverage implements specs.CalculateTimeWeightedAverage.
// Converts specs to domain objects, reduces, and renders the result.
func CalculateTimeWeightedAverage(periodSpecs []specs.PeriodParamsSpec, currentTime uint64) (string, error) {
	periods, err := newPeriodParamsList(periodSpecs)
	if err != nil {
		return "", err
	}

	average, err := calculateTimeWeightedAverage(periods, currentTime)
	if err != nil {
		return "", err
	}
	return average.String(), nil
}

// CalculateMergedTimeWeightedAverage implements specs.CalculateMergedTimeWeightedAverage.
func CalculateMergedTimeWeightedAverage(periodSpecs []specs.PeriodParamsSpec, currentTime uint64) (string, error) {
	periods, err := newPeriodParamsList(periodSpecs)
	if err != nil {
		return "", err
	}

	average, err := calculateMergedTimeWeightedAverage(periods, currentTime)
	if err != nil {
		return "", err
	}
	return average.String(), nil
}

func newPeriodParamsList(periodSpecs []specs.PeriodParamsSpec) ([]PeriodParams, error) {
	periods := make([]PeriodParams, len(periodSpecs))
	for i, spec := range periodSpecs {
		period, err := NewPeriodParams(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid period at index %d: %w", i, err)
		}
		periods[i] = period
	}
	return periods, nil
}

// calculateTimeWeightedAverage folds every period into
//
//	Σ value × effectiveDuration × weight / Σ effectiveDuration × weight
//
// with truncating division. Periods are taken exactly as given: windows
// covering the same wall-clock interval each contribute at full weight,
// so overlapping input double-counts that interval in both numerator and
// denominator. That behavior is pinned by regression tests; the merged
// variant below is the corrected mode.
func calculateTimeWeightedAverage(periods []PeriodParams, currentTime uint64) (Uint, error) {
	if len(periods) == 0 {
		return Uint{}, fmt.Errorf("%w: empty period list", ErrEmptyAggregate)
	}

	sumContributions := NewUintFromUint64(0)
	sumDurationWeights := NewUintFromUint64(0)

	for i, period := range periods {
		duration := NewUintFromUint64(period.effectiveDuration(currentTime))

		durationWeight, err := duration.Mul(period.Weight())
		if err != nil {
			return Uint{}, fmt.Errorf("period %d: %w", i, err)
		}
		contribution, err := period.Value().Mul(durationWeight)
		if err != nil {
			return Uint{}, fmt.Errorf("period %d: %w", i, err)
		}

		sumContributions, err = sumContributions.Add(contribution)
		if err != nil {
			return Uint{}, fmt.Errorf("period %d: %w", i, err)
		}
		sumDurationWeights, err = sumDurationWeights.Add(durationWeight)
		if err != nil {
			return Uint{}, fmt.Errorf("period %d: %w", i, err)
		}
	}

	if sumDurationWeights.IsZero() {
		return Uint{}, fmt.Errorf("%w: zero total weighted duration", ErrEmptyAggregate)
	}
	return sumContributions.Div(sumDurationWeights), nil
}

// calculateMergedTimeWeightedAverage is the corrected reduction: a merge
// pass collapses strictly overlapping windows, then the merged list flows
// through the faithful reduction unchanged. Non-overlapping periods pass
// through the merge untouched, so for such input the two modes agree for
// any weights.
func calculateMergedTimeWeightedAverage(periods []PeriodParams, currentTime uint64) (Uint, error) {
	merged, err := mergeOverlapping(periods, currentTime)
	if err != nil {
		return Uint{}, err
	}
	return calculateTimeWeightedAverage(merged, currentTime)
}

// mergeOverlapping sorts periods by start time and collapses each run of
// strictly overlapping windows into one period covering the merged range:
// its value is the duration-weighted sub-average of the members and its
// weight the duration-weighted average member weight, so the merged range
// contributes once at its combined level regardless of how many input
// windows covered it.
func mergeOverlapping(periods []PeriodParams, currentTime uint64) ([]PeriodParams, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: empty period list", ErrEmptyAggregate)
	}

	sorted := make([]PeriodParams, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Window().Start() < sorted[j].Window().Start()
	})

	merged := make([]PeriodParams, 0, len(sorted))
	for i := 0; i < len(sorted); {
		groupWindow := sorted[i].Window()
		j := i + 1
		for j < len(sorted) && sorted[j].Window().Overlaps(groupWindow) {
			if sorted[j].Window().End() > groupWindow.End() {
				groupWindow, _ = NewPeriodWindow(groupWindow.Start(), sorted[j].Window().End())
			}
			j++
		}
		group := sorted[i:j]
		i = j

		if len(group) == 1 {
			merged = append(merged, group[0])
			continue
		}

		combined, ok, err := combineGroup(group, groupWindow, currentTime)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Zero weighted duration: every member contributes nothing
			// to the reduction, so passing them through is exact.
			merged = append(merged, group...)
			continue
		}
		merged = append(merged, combined)
	}
	return merged, nil
}

// combineGroup collapses one run of overlapping windows. Reports false
// when the group has no weighted duration to sub-average over.
func combineGroup(group []PeriodParams, groupWindow PeriodWindow, currentTime uint64) (PeriodParams, bool, error) {
	subNumerator := NewUintFromUint64(0)
	subDenominator := NewUintFromUint64(0)
	memberDuration := NewUintFromUint64(0)

	for _, period := range group {
		duration := NewUintFromUint64(period.effectiveDuration(currentTime))

		durationWeight, err := duration.Mul(period.Weight())
		if err != nil {
			return PeriodParams{}, false, err
		}
		contribution, err := period.Value().Mul(durationWeight)
		if err != nil {
			return PeriodParams{}, false, err
		}

		subNumerator, err = subNumerator.Add(contribution)
		if err != nil {
			return PeriodParams{}, false, err
		}
		subDenominator, err = subDenominator.Add(durationWeight)
		if err != nil {
			return PeriodParams{}, false, err
		}
		memberDuration, err = memberDuration.Add(duration)
		if err != nil {
			return PeriodParams{}, false, err
		}
	}

	if subDenominator.IsZero() {
		return PeriodParams{}, false, nil
	}

	return PeriodParams{
		window: groupWindow,
		value:  subNumerator.Div(subDenominator),
		weight: subDenominator.Div(memberDuration),
	}, true, nil
}
