package internal

import (
	"fmt"

	specs "timeweighted-spec/specs"
)

// PeriodParams is one historical observation window supplied to an
// aggregation. It is a pure input: never mutated, and entries in a list
// may describe overlapping time ranges.
type PeriodParams struct {
	window PeriodWindow
	value  Uint
	weight Uint
}

func NewPeriodParams(spec specs.PeriodParamsSpec) (PeriodParams, error) {
	window, err := NewPeriodWindow(spec.StartTime, spec.EndTime)
	if err != nil {
		return PeriodParams{}, fmt.Errorf("invalid window: %w", err)
	}

	value, err := NewUint(spec.Value)
	if err != nil {
		return PeriodParams{}, fmt.Errorf("invalid value: %w", err)
	}

	weight, err := NewUint(spec.Weight)
	if err != nil {
		return PeriodParams{}, fmt.Errorf("invalid weight: %w", err)
	}

	return PeriodParams{
		window: window,
		value:  value,
		weight: weight,
	}, nil
}

func (p PeriodParams) Window() PeriodWindow {
	return p.window
}

func (p PeriodParams) Value() Uint {
	return p.value
}

func (p PeriodParams) Weight() Uint {
	return p.weight
}

// ToSpec converts the params back to the primitive-typed record.
func (p PeriodParams) ToSpec() specs.PeriodParamsSpec {
	return specs.PeriodParamsSpec{
		StartTime: p.window.Start(),
		EndTime:   p.window.End(),
		Value:     p.value.String(),
		Weight:    p.weight.String(),
	}
}

// effectiveDuration clips the window end to currentTime for windows that
// have not yet closed. A window entirely in the future contributes zero.
func (p PeriodParams) effectiveDuration(currentTime uint64) uint64 {
	end := p.window.End()
	if currentTime < end {
		end = currentTime
	}
	if end <= p.window.Start() {
		return 0
	}
	return end - p.window.Start()
}
