package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScaled(t *testing.T) {
	t.Run("renders fixed-point quantities as decimals", func(t *testing.T) {
		precision := mustUint(t, weightIdentity)

		rendered, err := FormatScaled(mustUint(t, "1500000000000000000"), precision)
		require.NoError(t, err)
		assert.Equal(t, "1.5", rendered)

		rendered, err = FormatScaled(mustUint(t, weightIdentity), precision)
		require.NoError(t, err)
		assert.Equal(t, "1", rendered)

		rendered, err = FormatScaled(mustUint(t, "250000000000000000"), precision)
		require.NoError(t, err)
		assert.Equal(t, "0.25", rendered)
	})

	t.Run("keeps the plain form for large quantities", func(t *testing.T) {
		rendered, err := FormatScaled(mustUint(t, "475000000000000000000"), mustUint(t, weightIdentity))

		require.NoError(t, err)
		assert.Equal(t, "475", rendered)
	})

	t.Run("with unit precision renders the quantity itself", func(t *testing.T) {
		rendered, err := FormatScaled(mustUint(t, "42"), NewUintFromUint64(1))

		require.NoError(t, err)
		assert.Equal(t, "42", rendered)
	})

	t.Run("with zero precision returns error", func(t *testing.T) {
		_, err := FormatScaled(mustUint(t, "42"), NewUintFromUint64(0))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "precision must be positive")
	})
}

func TestParseScaled(t *testing.T) {
	t.Run("converts decimals into fixed-point quantities", func(t *testing.T) {
		precision := mustUint(t, weightIdentity)

		parsed, err := ParseScaled("1.5", precision)
		require.NoError(t, err)
		assert.Equal(t, "1500000000000000000", parsed.String())

		parsed, err = ParseScaled("2", precision)
		require.NoError(t, err)
		assert.Equal(t, "2000000000000000000", parsed.String())
	})

	t.Run("truncates fractions finer than the scale", func(t *testing.T) {
		parsed, err := ParseScaled("0.0000000000000000019", mustUint(t, weightIdentity))

		require.NoError(t, err)
		assert.Equal(t, "1", parsed.String())
	})

	t.Run("round-trips through FormatScaled", func(t *testing.T) {
		precision := mustUint(t, weightIdentity)

		parsed, err := ParseScaled("0.75", precision)
		require.NoError(t, err)
		rendered, err := FormatScaled(parsed, precision)
		require.NoError(t, err)

		assert.Equal(t, "0.75", rendered)
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		_, err := ParseScaled("-1.5", mustUint(t, weightIdentity))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseScaled("one and a half", mustUint(t, weightIdentity))

		require.Error(t, err)
	})
}
