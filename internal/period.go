package internal

import (
	"fmt"
	"math"

	specs "timeweighted-spec/specs"
)

// Period is the mutable accumulation state of one observation window.
//
// The held value is a step function: it stays constant between updates,
// and each update folds value × elapsed into the weighted sum. A Period
// has exactly one logical owner; the accumulator provides no locking
// (callers in concurrent environments serialize access themselves).
type Period struct {
	window          PeriodWindow
	lastUpdateTime  uint64
	value           Uint
	weightedSum     Uint
	totalDuration   uint64
	weightPrecision Uint
}

func NewPeriod(spec specs.PeriodSpec) (*Period, error) {
	window, err := NewPeriodWindow(spec.StartTime, spec.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid window: %w", err)
	}

	if spec.LastUpdateTime < spec.StartTime || spec.LastUpdateTime > spec.EndTime {
		return nil, fmt.Errorf("last update time %d outside window [%d, %d]",
			spec.LastUpdateTime, spec.StartTime, spec.EndTime)
	}

	value, err := NewUint(spec.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}

	weightedSum, err := NewUint(spec.WeightedSum)
	if err != nil {
		return nil, fmt.Errorf("invalid weighted sum: %w", err)
	}

	if spec.TotalDuration > spec.EndTime-spec.StartTime {
		return nil, fmt.Errorf("total duration %d exceeds window length %d",
			spec.TotalDuration, spec.EndTime-spec.StartTime)
	}

	weightPrecision, err := NewUint(spec.WeightPrecision)
	if err != nil {
		return nil, fmt.Errorf("invalid weight precision: %w", err)
	}
	if weightPrecision.IsZero() {
		return nil, fmt.Errorf("weight precision must be positive")
	}

	return &Period{
		window:          window,
		lastUpdateTime:  spec.LastUpdateTime,
		value:           value,
		weightedSum:     weightedSum,
		totalDuration:   spec.TotalDuration,
		weightPrecision: weightPrecision,
	}, nil
}

// newPeriod starts a fresh window at startTime with the given initial
// reading. Non-overlap with earlier windows of the same timeline holds
// only if the caller starts periods in increasing time order.
func newPeriod(startTime, duration uint64, initialValue, weightPrecision Uint) (*Period, error) {
	if duration == 0 {
		return nil, fmt.Errorf("duration must be positive")
	}
	if weightPrecision.IsZero() {
		return nil, fmt.Errorf("weight precision must be positive")
	}

	if duration > math.MaxUint64-startTime {
		return nil, fmt.Errorf("%w: window end exceeds timestamp range", ErrValueOverflow)
	}
	window, err := NewPeriodWindow(startTime, startTime+duration)
	if err != nil {
		return nil, fmt.Errorf("invalid window: %w", err)
	}

	return &Period{
		window:          window,
		lastUpdateTime:  startTime,
		value:           initialValue,
		weightedSum:     NewUintFromUint64(0),
		totalDuration:   0,
		weightPrecision: weightPrecision,
	}, nil
}

func (p *Period) Window() PeriodWindow {
	return p.window
}

func (p *Period) LastUpdateTime() uint64 {
	return p.lastUpdateTime
}

func (p *Period) Value() Uint {
	return p.value
}

func (p *Period) WeightedSum() Uint {
	return p.weightedSum
}

func (p *Period) TotalDuration() uint64 {
	return p.totalDuration
}

func (p *Period) WeightPrecision() Uint {
	return p.weightPrecision
}

// UpdateValue records a new reading at timestamp.
//
// The contribution of the sub-interval since the last update is folded
// into the weighted sum before the new value takes effect. Both the
// multiply and the add are overflow-checked. On any error the period is
// left exactly as it was.
func (p *Period) UpdateValue(newValue Uint, timestamp uint64) error {
	if timestamp < p.window.Start() || timestamp > p.window.End() {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidTime, timestamp, p.window.Start(), p.window.End())
	}
	if timestamp < p.lastUpdateTime {
		return fmt.Errorf("%w: %d precedes last update %d",
			ErrInvalidTime, timestamp, p.lastUpdateTime)
	}

	elapsed := timestamp - p.lastUpdateTime
	weightedSum := p.weightedSum
	if elapsed > 0 {
		contribution, err := p.value.Mul(NewUintFromUint64(elapsed))
		if err != nil {
			return err
		}
		weightedSum, err = p.weightedSum.Add(contribution)
		if err != nil {
			return err
		}
	}

	// All checks passed; commit the whole update at once.
	p.weightedSum = weightedSum
	p.totalDuration += elapsed
	p.value = newValue
	p.lastUpdateTime = timestamp
	return nil
}

// Average returns the time-weighted average of the period's readings at
// currentTime, including the still-open tail during which the current
// value has held since the last update. The tail is clipped to the
// window end. Returns ErrEmptyAggregate when no time has elapsed.
func (p *Period) Average(currentTime uint64) (Uint, error) {
	tailEnd := currentTime
	if tailEnd > p.window.End() {
		tailEnd = p.window.End()
	}

	sum := p.weightedSum
	elapsed := p.totalDuration
	if tailEnd > p.lastUpdateTime {
		tail := tailEnd - p.lastUpdateTime
		contribution, err := p.value.Mul(NewUintFromUint64(tail))
		if err != nil {
			return Uint{}, err
		}
		sum, err = sum.Add(contribution)
		if err != nil {
			return Uint{}, err
		}
		elapsed += tail
	}

	if elapsed == 0 {
		return Uint{}, fmt.Errorf("%w: period has no elapsed time at %d", ErrEmptyAggregate, currentTime)
	}
	return sum.Div(NewUintFromUint64(elapsed)), nil
}

// ToSpec converts the period back to its primitive-typed record.
func (p *Period) ToSpec() specs.PeriodSpec {
	return specs.PeriodSpec{
		StartTime:       p.window.Start(),
		EndTime:         p.window.End(),
		LastUpdateTime:  p.lastUpdateTime,
		Value:           p.value.String(),
		WeightedSum:     p.weightedSum.String(),
		TotalDuration:   p.totalDuration,
		WeightPrecision: p.weightPrecision.String(),
	}
}

// PeriodWindow is the inclusive [start, end] extent of an observation
// window.
type PeriodWindow struct {
	start uint64
	end   uint64
}

func NewPeriodWindow(start, end uint64) (PeriodWindow, error) {
	if end < start {
		return PeriodWindow{}, fmt.Errorf("end %d precedes start %d", end, start)
	}
	return PeriodWindow{start: start, end: end}, nil
}

func (w PeriodWindow) Start() uint64 {
	return w.start
}

func (w PeriodWindow) End() uint64 {
	return w.end
}

// Duration returns the full window length.
func (w PeriodWindow) Duration() uint64 {
	return w.end - w.start
}

// Overlaps reports whether two windows share a sub-interval of non-zero
// length. Windows that only touch at a boundary instant do not overlap.
func (w PeriodWindow) Overlaps(other PeriodWindow) bool {
	return w.start < other.end && other.start < w.end
}
