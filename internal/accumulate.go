package internal

import (
	"fmt"

	specs "timeweighted-spec/specs"
)

// CreatePeriod implements specs.CreatePeriod.
// Converts primitives to domain objects, builds the period, and converts back.
func CreatePeriod(startTime, duration uint64, initialValue, weightPrecision string) (specs.PeriodSpec, error) {
	value, err := NewUint(initialValue)
	if err != nil {
		return specs.PeriodSpec{}, fmt.Errorf("invalid initial value: %w", err)
	}

	precision, err := NewUint(weightPrecision)
	if err != nil {
		return specs.PeriodSpec{}, fmt.Errorf("invalid weight precision: %w", err)
	}

	period, err := newPeriod(startTime, duration, value, precision)
	if err != nil {
		return specs.PeriodSpec{}, err
	}

	return period.ToSpec(), nil
}

// UpdateValue implements specs.UpdateValue.
// Converts the spec to a domain period, applies the update, and converts
// back. On error the input spec is returned untouched alongside the
// error, so the caller's record never reflects a partial update.
func UpdateValue(periodSpec specs.PeriodSpec, newValue string, timestamp uint64) (specs.PeriodSpec, error) {
	period, err := NewPeriod(periodSpec)
	if err != nil {
		return periodSpec, fmt.Errorf("invalid period: %w", err)
	}

	value, err := NewUint(newValue)
	if err != nil {
		return periodSpec, fmt.Errorf("invalid value: %w", err)
	}

	if err := period.UpdateValue(value, timestamp); err != nil {
		return periodSpec, err
	}

	return period.ToSpec(), nil
}
