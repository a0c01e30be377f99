package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specs "timeweighted-spec/specs"
)

func TestCreatePeriod(t *testing.T) {
	t.Run("initializes a fresh period", func(t *testing.T) {
		period, err := CreatePeriod(1000, 3600, "250", weightIdentity)

		require.NoError(t, err)
		assert.Equal(t, uint64(1000), period.StartTime)
		assert.Equal(t, uint64(4600), period.EndTime)
		assert.Equal(t, uint64(1000), period.LastUpdateTime)
		assert.Equal(t, "250", period.Value)
		assert.Equal(t, "0", period.WeightedSum)
		assert.Equal(t, uint64(0), period.TotalDuration)
		assert.Equal(t, weightIdentity, period.WeightPrecision)
	})

	t.Run("with zero duration returns error", func(t *testing.T) {
		_, err := CreatePeriod(1000, 0, "250", weightIdentity)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duration must be positive")
	})

	t.Run("with zero weight precision returns error", func(t *testing.T) {
		_, err := CreatePeriod(1000, 3600, "250", "0")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight precision must be positive")
	})

	t.Run("with non-numeric initial value returns error", func(t *testing.T) {
		_, err := CreatePeriod(1000, 3600, "two hundred", weightIdentity)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid initial value")
	})

	t.Run("with window end past the timestamp range fails with overflow", func(t *testing.T) {
		_, err := CreatePeriod(^uint64(0)-10, 3600, "250", weightIdentity)

		require.ErrorIs(t, err, ErrValueOverflow)
	})
}

func TestUpdateValue(t *testing.T) {
	t.Run("folds elapsed contribution and applies new value", func(t *testing.T) {
		period, err := CreatePeriod(0, 100, "40", weightIdentity)
		require.NoError(t, err)

		updated, err := UpdateValue(period, "60", 25)

		require.NoError(t, err)
		assert.Equal(t, "1000", updated.WeightedSum) // 40*25
		assert.Equal(t, uint64(25), updated.TotalDuration)
		assert.Equal(t, "60", updated.Value)
		assert.Equal(t, uint64(25), updated.LastUpdateTime)
	})

	t.Run("chained updates accumulate across calls", func(t *testing.T) {
		period, err := CreatePeriod(0, 100, "40", weightIdentity)
		require.NoError(t, err)

		period, err = UpdateValue(period, "60", 25)
		require.NoError(t, err)
		period, err = UpdateValue(period, "20", 75)
		require.NoError(t, err)

		assert.Equal(t, "4000", period.WeightedSum) // 40*25 + 60*50
		assert.Equal(t, uint64(75), period.TotalDuration)
	})

	t.Run("on invalid time returns the input spec unchanged", func(t *testing.T) {
		period, err := CreatePeriod(100, 100, "40", weightIdentity)
		require.NoError(t, err)

		returned, err := UpdateValue(period, "60", 500)

		require.ErrorIs(t, err, ErrInvalidTime)
		assert.Equal(t, period, returned)
	})

	t.Run("on overflow returns the input spec unchanged", func(t *testing.T) {
		period, err := CreatePeriod(0, 100, maxUint256, weightIdentity)
		require.NoError(t, err)

		returned, err := UpdateValue(period, "60", 2)

		require.ErrorIs(t, err, ErrValueOverflow)
		assert.Equal(t, period, returned)
	})

	t.Run("on malformed period spec returns error", func(t *testing.T) {
		spec := specs.PeriodSpec{
			StartTime:       0,
			EndTime:         100,
			LastUpdateTime:  0,
			Value:           "nope",
			WeightedSum:     "0",
			WeightPrecision: weightIdentity,
		}

		_, err := UpdateValue(spec, "60", 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid period")
	})
}
