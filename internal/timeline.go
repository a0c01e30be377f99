package internal

import (
	"errors"
	"fmt"

	"timeweighted-spec/internal/infra"
	specs "timeweighted-spec/specs"
)

// Timeline owns an ordered sequence of periods and the weight each one
// carries in cross-period aggregation. It is the "individually
// addressable record" layer: each period lives in the timeline's table
// rather than in anonymous caller storage.
//
// By default the timeline trusts the caller to start periods in
// increasing time order, matching the accumulator's documented
// precondition. WithStrictOrdering turns the precondition into a runtime
// check that rejects a period starting before the previous period's end.
// The strict check is a deliberate deviation from the reference behavior
// and is therefore opt-in, never the default.
type Timeline struct {
	entries []timelineEntry
	strict  bool
	bus     *infra.Bus
}

type timelineEntry struct {
	period *Period
	weight Uint
}

type TimelineOption func(*Timeline)

// WithStrictOrdering rejects a new period whose start time precedes the
// previous period's end time.
func WithStrictOrdering() TimelineOption {
	return func(t *Timeline) { t.strict = true }
}

// WithBus publishes lifecycle events to the given bus.
func WithBus(bus *infra.Bus) TimelineOption {
	return func(t *Timeline) { t.bus = bus }
}

func NewTimeline(opts ...TimelineOption) *Timeline {
	t := &Timeline{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StartPeriod opens a new observation window and makes it the current
// period. The weight is a decimal string ("1", "0.5") converted to the
// period's fixed point at weightPrecision; it is the multiplier the
// period will carry when the timeline is aggregated. The previous
// period, if any, is closed.
func (t *Timeline) StartPeriod(startTime, duration uint64, initialValue Uint, weight string, weightPrecision Uint) (*Period, error) {
	if t.strict && len(t.entries) > 0 {
		previous := t.entries[len(t.entries)-1].period
		if startTime < previous.Window().End() {
			return nil, fmt.Errorf("%w: start %d precedes previous period end %d",
				ErrInvalidTime, startTime, previous.Window().End())
		}
	}

	scaledWeight, err := ParseScaled(weight, weightPrecision)
	if err != nil {
		return nil, fmt.Errorf("invalid weight: %w", err)
	}
	// Re-render so subscribers see the normalized form ("0.50" -> "0.5").
	renderedWeight, err := FormatScaled(scaledWeight, weightPrecision)
	if err != nil {
		return nil, fmt.Errorf("invalid weight: %w", err)
	}

	period, err := newPeriod(startTime, duration, initialValue, weightPrecision)
	if err != nil {
		return nil, err
	}

	if len(t.entries) > 0 {
		t.publish(PeriodClosedEvent{Period: t.entries[len(t.entries)-1].period.ToSpec()})
	}

	t.entries = append(t.entries, timelineEntry{period: period, weight: scaledWeight})
	t.publish(PeriodStartedEvent{Period: period.ToSpec(), Weight: renderedWeight})
	return period, nil
}

// Observe records a new value on the current period.
func (t *Timeline) Observe(value Uint, timestamp uint64) error {
	current := t.Current()
	if current == nil {
		return fmt.Errorf("%w: no open period", ErrInvalidTime)
	}
	if err := current.UpdateValue(value, timestamp); err != nil {
		return err
	}
	t.publish(ValueObservedEvent{Period: current.ToSpec()})
	return nil
}

// Current returns the most recently started period, or nil if no period
// has been started.
func (t *Timeline) Current() *Period {
	if len(t.entries) == 0 {
		return nil
	}
	return t.entries[len(t.entries)-1].period
}

// Len returns the number of periods the timeline holds.
func (t *Timeline) Len() int {
	return len(t.entries)
}

// Params snapshots every period into aggregation inputs at currentTime.
// Each period contributes its own time-weighted average as the value
// (falling back to the current reading for a period with no elapsed
// time) together with the weight registered when it was started.
func (t *Timeline) Params(currentTime uint64) ([]specs.PeriodParamsSpec, error) {
	params := make([]specs.PeriodParamsSpec, len(t.entries))
	for i, entry := range t.entries {
		value, err := entry.period.Average(currentTime)
		if err != nil {
			if !errors.Is(err, ErrEmptyAggregate) {
				return nil, fmt.Errorf("period %d: %w", i, err)
			}
			value = entry.period.Value()
		}
		params[i] = PeriodParams{
			window: entry.period.Window(),
			value:  value,
			weight: entry.weight,
		}.ToSpec()
	}
	return params, nil
}

// Average reduces the whole timeline to one time-weighted average at
// currentTime using the faithful (non-merging) reduction.
func (t *Timeline) Average(currentTime uint64) (Uint, error) {
	paramSpecs, err := t.Params(currentTime)
	if err != nil {
		return Uint{}, err
	}
	periods, err := newPeriodParamsList(paramSpecs)
	if err != nil {
		return Uint{}, err
	}
	average, err := calculateTimeWeightedAverage(periods, currentTime)
	if err != nil {
		return Uint{}, err
	}
	t.publish(AverageComputedEvent{Average: average.String(), CurrentTime: currentTime})
	return average, nil
}

func (t *Timeline) publish(e infra.Event) {
	if t.bus != nil {
		t.bus.Publish(e)
	}
}

// === LIFECYCLE EVENTS ===

// PeriodStartedEvent carries the period's opening state and the decimal
// weight it was registered with.
type PeriodStartedEvent struct {
	Period specs.PeriodSpec
	Weight string
}

func (e PeriodStartedEvent) EventType() infra.EventType { return infra.PeriodStarted }

type ValueObservedEvent struct {
	Period specs.PeriodSpec
}

func (e ValueObservedEvent) EventType() infra.EventType { return infra.ValueObserved }

type PeriodClosedEvent struct {
	Period specs.PeriodSpec
}

func (e PeriodClosedEvent) EventType() infra.EventType { return infra.PeriodClosed }

type AverageComputedEvent struct {
	Average     string
	CurrentTime uint64
}

func (e AverageComputedEvent) EventType() infra.EventType { return infra.AverageComputed }
